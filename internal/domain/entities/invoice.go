package entities

import "time"

// InvoiceStatus represents the payment state of an invoice.
//
// Domain notes:
//   - Status is derived from (amountPaid, totalAmount, dueDate) and stored as a
//     cache; DeriveInvoiceStatus is the single source of truth.
//   - "paid" is terminal: it is never demoted by the derivation, which is what
//     makes the administrative mark-paid override stick.

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// ValidInvoiceStatus reports whether s is one of the enumerated statuses.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// LineItem is a single billable line on an invoice.
//
// Amount defaults to Quantity*Rate when the caller leaves it zero.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Invoice is the invoice entity persisted by the billing ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Monetary representation:
//   - TotalAmount is the sum of line item amounts at creation time. It is not
//     recomputed when items are mutated out of band; the ledger recomputes it
//     only when it replaces the item list itself.
//   - AmountPaid is maintained exclusively by the payment ledger and always
//     satisfies 0 <= AmountPaid <= TotalAmount.

type Invoice struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ClientID      string        `json:"client_id"`
	ProjectID     string        `json:"project_id"`
	InvoiceNumber string        `json:"invoice_number"`
	Items         []LineItem    `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	AmountPaid    float64       `json:"amount_paid"`
	Status        InvoiceStatus `json:"status"`
	IssueDate     time.Time     `json:"issue_date"`
	DueDate       time.Time     `json:"due_date"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// AmountDue is always derived, never stored.
func (i Invoice) AmountDue() float64 {
	return i.TotalAmount - i.AmountPaid
}

// DeriveInvoiceStatus computes the invoice status from its payment state.
//
// Rules:
//   - amountPaid >= totalAmount            => paid
//   - 0 < amountPaid < totalAmount         => partial
//   - amountPaid == 0 and dueDate passed   => overdue
//   - otherwise                            => unpaid
//
// The function is pure: same inputs always yield the same status.
func DeriveInvoiceStatus(amountPaid, totalAmount float64, dueDate, now time.Time) InvoiceStatus {
	if totalAmount > 0 && amountPaid >= totalAmount {
		return InvoiceStatusPaid
	}
	if amountPaid > 0 {
		return InvoiceStatusPartial
	}
	if !dueDate.IsZero() && dueDate.Before(now) {
		return InvoiceStatusOverdue
	}
	return InvoiceStatusUnpaid
}

// DerivedStatus applies DeriveInvoiceStatus to the invoice, honoring the
// terminal stored "paid" state.
func (i Invoice) DerivedStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceStatusPaid {
		return InvoiceStatusPaid
	}
	return DeriveInvoiceStatus(i.AmountPaid, i.TotalAmount, i.DueDate, now)
}

// NormalizeItems fills missing line item amounts with quantity*rate and
// returns the resulting total.
func NormalizeItems(items []LineItem) ([]LineItem, float64) {
	out := make([]LineItem, len(items))
	total := 0.0
	for idx, it := range items {
		if it.Amount == 0 {
			it.Amount = it.Quantity * it.Rate
		}
		out[idx] = it
		total += it.Amount
	}
	return out, total
}
