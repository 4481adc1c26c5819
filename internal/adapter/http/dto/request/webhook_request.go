package request

import (
	"encoding/json"
	"strings"
)

// MercadoPagoWebhookRequest is the notification envelope Mercado Pago posts
// to the webhook endpoint. Only the payment id is extracted; the full raw
// payload travels alongside it for mock-mode resolution.
type MercadoPagoWebhookRequest struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// ResolvePaymentID returns the provider payment id, falling back to the
// `id` query-string convention some notification modes use.
func (r MercadoPagoWebhookRequest) ResolvePaymentID() string {
	return strings.TrimSpace(r.Data.ID.String())
}
