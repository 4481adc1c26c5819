package interfaces

import (
	"context"

	"freelanceflow/internal/domain/entities"
)

// Collaborator-owned collections the ledger reads but never writes.

// ITimeEntryReader exposes tracked time for invoicing and time reports.
type ITimeEntryReader interface {
	ListByProject(ctx context.Context, userID, projectID string) ([]entities.TimeEntry, error)
	ListByUser(ctx context.Context, userID string) ([]entities.TimeEntry, error)
}

// IExpenseReader exposes expenses for financial and tax reports.
type IExpenseReader interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Expense, error)
}

// IDirectoryReader exposes clients and projects for report joins.
type IDirectoryReader interface {
	ListClients(ctx context.Context, userID string) ([]entities.Client, error)
	ListProjects(ctx context.Context, userID string) ([]entities.Project, error)
}
