package entities

import "time"

// PaymentMethod enumerates how a payment was received.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodOther        PaymentMethod = "other"
)

// ValidPaymentMethod reports whether m is one of the enumerated methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCard, PaymentMethodCash,
		PaymentMethodPaypal, PaymentMethodOther:
		return true
	}
	return false
}

// Payment is an amount applied against a single invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (invoice_id-index): invoice_id
//
// Invariant: the sum of all non-deleted payments for an invoice equals that
// invoice's AmountPaid. The payment ledger maintains this procedurally on
// create/delete; both writes ride a single transaction.
type Payment struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	InvoiceID     string        `json:"invoice_id"`
	Amount        float64       `json:"amount"`
	PaymentDate   time.Time     `json:"payment_date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Reference     string        `json:"reference,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
