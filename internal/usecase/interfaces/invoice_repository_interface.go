package interfaces

import (
	"context"

	"freelanceflow/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Repositories return a zero-value entity (ID == "") for missing records; the
// use cases translate that into their not-found errors after checking
// ownership.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}
