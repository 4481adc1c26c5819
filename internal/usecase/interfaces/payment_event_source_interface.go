package interfaces

import (
	"context"
	"encoding/json"
	"time"
)

// PaymentEvent is a gateway payment notification resolved into ledger terms.
//
// ExternalReference carries "<user_id>/<invoice_id>" as set when the checkout
// was created; events without a parsable reference are dropped by the webhook
// handler.
type PaymentEvent struct {
	ProviderPaymentID string
	ExternalReference string
	Amount            float64
	Status            string
	Method            string
	Date              time.Time
}

// IPaymentEventSource abstracts the external payment provider feeding the
// ledger (e.g. Mercado Pago webhooks). rawPayload is the webhook body; mock
// implementations may resolve the event from it instead of calling out.
type IPaymentEventSource interface {
	ResolvePayment(ctx context.Context, providerPaymentID string, rawPayload json.RawMessage) (PaymentEvent, error)
}
