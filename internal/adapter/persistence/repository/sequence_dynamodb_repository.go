package repository

import (
	"context"
	"fmt"
	"strconv"

	appconfig "freelanceflow/internal/infrastructure/config"
	"freelanceflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SequenceDynamoRepository reserves invoice sequence numbers with an atomic
// ADD on a per-user counter item.
//
// Table requirements:
//   - PK: user_id (string)
//
// ADD creates the item on first use, so a new user's first reservation
// returns 1 without any seeding step.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceSequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: appconfig.AppConfig.CountersTable,
	}
}

func (r *SequenceDynamoRepository) ReserveNext(ctx context.Context, userID string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("counter item for user %s missing seq attribute", userID)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter item for user %s has non-numeric seq", userID)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
