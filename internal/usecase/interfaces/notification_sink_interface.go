package interfaces

import "context"

// Notification event types emitted by the payment ledger.
const (
	EventPaymentReceived = "payment_received"
	EventInvoicePaid     = "invoice_paid"
)

// NotificationEvent is the payload handed to the notification collaborator.
type NotificationEvent struct {
	Type      string  `json:"type"`
	UserID    string  `json:"user_id"`
	InvoiceID string  `json:"invoice_id"`
	PaymentID string  `json:"payment_id,omitempty"`
	Amount    float64 `json:"amount"`
}

// INotificationSink delivers events fire-and-forget: a publish failure must
// never roll back the ledger write that produced the event.
type INotificationSink interface {
	Publish(ctx context.Context, event NotificationEvent) error
}
