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

const invoicesUserIDIndex = "user_id-index"

type lineItemAttr struct {
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	Rate        string `dynamodbav:"rate"`
	Amount      string `dynamodbav:"amount"`
}

type invoiceItem struct {
	ID            string         `dynamodbav:"id"`
	UserID        string         `dynamodbav:"user_id"`
	ClientID      string         `dynamodbav:"client_id"`
	ProjectID     string         `dynamodbav:"project_id,omitempty"`
	InvoiceNumber string         `dynamodbav:"invoice_number"`
	Items         []lineItemAttr `dynamodbav:"items"`
	TotalAmount   string         `dynamodbav:"total_amount"`
	AmountPaid    string         `dynamodbav:"amount_paid"`
	Status        string         `dynamodbav:"status"`
	IssueDate     string         `dynamodbav:"issue_date,omitempty"`
	DueDate       string         `dynamodbav:"due_date,omitempty"`
	Notes         string         `dynamodbav:"notes,omitempty"`
	CreatedAt     string         `dynamodbav:"created_at"`
	UpdatedAt     string         `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: appconfig.AppConfig.InvoicesTable,
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Invoice, error) {
	items, err := queryAllPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(items))
	for _, raw := range items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

// Update replaces the full item; the invoice must already exist.
func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	items := make([]lineItemAttr, 0, len(inv.Items))
	for _, li := range inv.Items {
		items = append(items, lineItemAttr{
			Description: li.Description,
			Quantity:    floatToString(li.Quantity),
			Rate:        floatToString(li.Rate),
			Amount:      floatToString(li.Amount),
		})
	}
	return invoiceItem{
		ID:            inv.ID,
		UserID:        inv.UserID,
		ClientID:      inv.ClientID,
		ProjectID:     inv.ProjectID,
		InvoiceNumber: inv.InvoiceNumber,
		Items:         items,
		TotalAmount:   floatToString(inv.TotalAmount),
		AmountPaid:    floatToString(inv.AmountPaid),
		Status:        string(inv.Status),
		IssueDate:     formatTime(inv.IssueDate),
		DueDate:       formatTime(inv.DueDate),
		Notes:         inv.Notes,
		CreatedAt:     formatTime(inv.CreatedAt),
		UpdatedAt:     formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{
			Description: li.Description,
			Quantity:    stringToFloat(li.Quantity),
			Rate:        stringToFloat(li.Rate),
			Amount:      stringToFloat(li.Amount),
		})
	}
	return entities.Invoice{
		ID:            it.ID,
		UserID:        it.UserID,
		ClientID:      it.ClientID,
		ProjectID:     it.ProjectID,
		InvoiceNumber: it.InvoiceNumber,
		Items:         items,
		TotalAmount:   stringToFloat(it.TotalAmount),
		AmountPaid:    stringToFloat(it.AmountPaid),
		Status:        entities.InvoiceStatus(it.Status),
		IssueDate:     parseTime(it.IssueDate),
		DueDate:       parseTime(it.DueDate),
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
