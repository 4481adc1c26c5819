package interfaces

import (
	"context"
	"errors"

	"freelanceflow/internal/domain/entities"
)

// ErrLedgerConflict is returned by the transactional ledger writes when the
// invoice's amount_paid no longer matches the value the caller read, i.e. a
// concurrent writer interleaved between read and commit.
var ErrLedgerConflict = errors.New("ledger transaction conflict")

// IPaymentRepository abstracts DynamoDB persistence for Payment, including the
// two transactional ledger operations that touch the invoice in the same
// commit.
//
// Apply persists the payment and updates the invoice's amount_paid/status as a
// single transaction, conditioned on amount_paid still being expectedPaid.
// Reverse deletes the payment and applies the decremented invoice the same
// way; a nil invoice skips the invoice write (orphaned-invoice case).

type IPaymentRepository interface {
	Apply(ctx context.Context, p entities.Payment, inv entities.Invoice, expectedPaid float64) error
	Reverse(ctx context.Context, paymentID string, inv *entities.Invoice, expectedPaid float64) error
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}
