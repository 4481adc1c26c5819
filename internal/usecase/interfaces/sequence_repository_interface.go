package interfaces

import "context"

// IInvoiceSequenceRepository reserves invoice sequence numbers.
//
// ReserveNext must be atomic per user: two concurrent reservations for the
// same user never observe the same value. The counter is keyed by user only,
// not by year; the sequence deliberately does not reset at year boundaries.

type IInvoiceSequenceRepository interface {
	ReserveNext(ctx context.Context, userID string) (int64, error)
}
