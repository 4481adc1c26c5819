package repository

import (
	"context"

	"freelanceflow/internal/domain/entities"
	appconfig "freelanceflow/internal/infrastructure/config"
	"freelanceflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Read-only adapters over collaborator-owned tables. The ledger never writes
// these; their CRUD lives in other services.

const (
	timeEntriesProjectIDIndex = "project_id-index"
	readersUserIDIndex        = "user_id-index"
)

type timeEntryItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	ProjectID   string `dynamodbav:"project_id"`
	Description string `dynamodbav:"description"`
	Hours       string `dynamodbav:"hours"`
	Billable    bool   `dynamodbav:"billable"`
	Date        string `dynamodbav:"date"`
}

type expenseItem struct {
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	ProjectID     string `dynamodbav:"project_id,omitempty"`
	Description   string `dynamodbav:"description"`
	Category      string `dynamodbav:"category"`
	Amount        string `dynamodbav:"amount"`
	TaxDeductible bool   `dynamodbav:"tax_deductible"`
	Date          string `dynamodbav:"date"`
}

type clientItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id"`
	Name   string `dynamodbav:"name"`
}

type projectItem struct {
	ID       string `dynamodbav:"id"`
	UserID   string `dynamodbav:"user_id"`
	ClientID string `dynamodbav:"client_id"`
	Name     string `dynamodbav:"name"`
	Status   string `dynamodbav:"status"`
}

// TimeEntryDynamoReader reads the time_entries table.
//
// Table requirements:
//   - GSI: project_id-index (PK: project_id)
//   - GSI: user_id-index (PK: user_id)
type TimeEntryDynamoReader struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeEntryReader = (*TimeEntryDynamoReader)(nil)

func NewTimeEntryDynamoReader(ddb *dynamodb.Client) *TimeEntryDynamoReader {
	return &TimeEntryDynamoReader{ddb: ddb, tableName: appconfig.AppConfig.TimeEntriesTable}
}

func (r *TimeEntryDynamoReader) ListByProject(ctx context.Context, userID, projectID string) ([]entities.TimeEntry, error) {
	items, err := queryAllPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(timeEntriesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		FilterExpression:       aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalTimeEntries(items)
}

func (r *TimeEntryDynamoReader) ListByUser(ctx context.Context, userID string) ([]entities.TimeEntry, error) {
	items, err := queryAllPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(readersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalTimeEntries(items)
}

func unmarshalTimeEntries(raw []map[string]types.AttributeValue) ([]entities.TimeEntry, error) {
	entries := make([]entities.TimeEntry, 0, len(raw))
	for _, item := range raw {
		var it timeEntryItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		entries = append(entries, entities.TimeEntry{
			ID:          it.ID,
			UserID:      it.UserID,
			ProjectID:   it.ProjectID,
			Description: it.Description,
			Hours:       stringToFloat(it.Hours),
			Billable:    it.Billable,
			Date:        parseTime(it.Date),
		})
	}
	return entries, nil
}

// ExpenseDynamoReader reads the expenses table through its user_id-index.
type ExpenseDynamoReader struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseReader = (*ExpenseDynamoReader)(nil)

func NewExpenseDynamoReader(ddb *dynamodb.Client) *ExpenseDynamoReader {
	return &ExpenseDynamoReader{ddb: ddb, tableName: appconfig.AppConfig.ExpensesTable}
}

func (r *ExpenseDynamoReader) ListByUser(ctx context.Context, userID string) ([]entities.Expense, error) {
	items, err := queryAllPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(readersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	expenses := make([]entities.Expense, 0, len(items))
	for _, item := range items {
		var it expenseItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		expenses = append(expenses, entities.Expense{
			ID:            it.ID,
			UserID:        it.UserID,
			ProjectID:     it.ProjectID,
			Description:   it.Description,
			Category:      it.Category,
			Amount:        stringToFloat(it.Amount),
			TaxDeductible: it.TaxDeductible,
			Date:          parseTime(it.Date),
		})
	}
	return expenses, nil
}

// DirectoryDynamoReader reads the clients and projects tables through their
// user_id-index GSIs.
type DirectoryDynamoReader struct {
	ddb           *dynamodb.Client
	clientsTable  string
	projectsTable string
}

var _ interfaces.IDirectoryReader = (*DirectoryDynamoReader)(nil)

func NewDirectoryDynamoReader(ddb *dynamodb.Client) *DirectoryDynamoReader {
	return &DirectoryDynamoReader{
		ddb:           ddb,
		clientsTable:  appconfig.AppConfig.ClientsTable,
		projectsTable: appconfig.AppConfig.ProjectsTable,
	}
}

func (r *DirectoryDynamoReader) ListClients(ctx context.Context, userID string) ([]entities.Client, error) {
	out, err := r.queryByUser(ctx, r.clientsTable, userID)
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(out))
	for _, item := range out {
		var it clientItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		clients = append(clients, entities.Client{ID: it.ID, UserID: it.UserID, Name: it.Name})
	}
	return clients, nil
}

func (r *DirectoryDynamoReader) ListProjects(ctx context.Context, userID string) ([]entities.Project, error) {
	out, err := r.queryByUser(ctx, r.projectsTable, userID)
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(out))
	for _, item := range out {
		var it projectItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		projects = append(projects, entities.Project{
			ID:       it.ID,
			UserID:   it.UserID,
			ClientID: it.ClientID,
			Name:     it.Name,
			Status:   entities.ProjectStatus(it.Status),
		})
	}
	return projects, nil
}

func (r *DirectoryDynamoReader) queryByUser(ctx context.Context, table, userID string) ([]map[string]types.AttributeValue, error) {
	return queryAllPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(readersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
}
