package repository

import (
	"context"
	"errors"

	"freelanceflow/internal/domain/entities"
	appconfig "freelanceflow/internal/infrastructure/config"
	"freelanceflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	paymentsUserIDIndex    = "user_id-index"
	paymentsInvoiceIDIndex = "invoice_id-index"
)

type paymentItem struct {
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	InvoiceID     string `dynamodbav:"invoice_id"`
	Amount        string `dynamodbav:"amount"`
	PaymentDate   string `dynamodbav:"payment_date"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Reference     string `dynamodbav:"reference,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// Apply and Reverse ride TransactWriteItems so the payment write and the
// invoice amount_paid/status update commit or fail together. The invoice
// update is conditioned on amount_paid still holding the value the use case
// read; a failed condition surfaces as interfaces.ErrLedgerConflict.

type PaymentDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	invoicesTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:           ddb,
		tableName:     appconfig.AppConfig.PaymentsTable,
		invoicesTable: appconfig.AppConfig.InvoicesTable,
	}
}

func (r *PaymentDynamoRepository) Apply(ctx context.Context, p entities.Payment, inv entities.Invoice, expectedPaid float64) error {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: r.invoiceLedgerUpdate(inv, expectedPaid),
			},
		},
	})
	return mapTransactionError(err)
}

func (r *PaymentDynamoRepository) Reverse(ctx context.Context, paymentID string, inv *entities.Invoice, expectedPaid float64) error {
	if inv == nil {
		// Orphaned payment: no invoice left to update.
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: paymentID},
			},
		})
		return err
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: paymentID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: r.invoiceLedgerUpdate(*inv, expectedPaid),
			},
		},
	})
	return mapTransactionError(err)
}

func (r *PaymentDynamoRepository) invoiceLedgerUpdate(inv entities.Invoice, expectedPaid float64) *types.Update {
	return &types.Update{
		TableName: aws.String(r.invoicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: inv.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #amount_paid = :expected"),
		UpdateExpression:    aws.String("SET #amount_paid = :paid, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: floatToString(expectedPaid)},
			":paid":       &types.AttributeValueMemberS{Value: floatToString(inv.AmountPaid)},
			":status":     &types.AttributeValueMemberS{Value: string(inv.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(inv.UpdatedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#amount_paid": "amount_paid",
			"#status":      "status",
			"#updated_at":  "updated_at",
		},
	}
}

func mapTransactionError(err error) error {
	if err == nil {
		return nil
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return interfaces.ErrLedgerConflict
			}
		}
	}
	return err
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsUserIDIndex, "user_id", userID)
}

func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsInvoiceIDIndex, "invoice_id", invoiceID)
}

func (r *PaymentDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Payment, error) {
	items, err := queryAllPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(key + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(items))
	for _, raw := range items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		UserID:        p.UserID,
		InvoiceID:     p.InvoiceID,
		Amount:        floatToString(p.Amount),
		PaymentDate:   formatTime(p.PaymentDate),
		PaymentMethod: string(p.PaymentMethod),
		Reference:     p.Reference,
		Notes:         p.Notes,
		CreatedAt:     formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:            it.ID,
		UserID:        it.UserID,
		InvoiceID:     it.InvoiceID,
		Amount:        stringToFloat(it.Amount),
		PaymentDate:   parseTime(it.PaymentDate),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		Reference:     it.Reference,
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
