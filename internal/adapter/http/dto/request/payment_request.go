package request

// PaymentCreateRequest is the payload for recording a payment against an
// invoice. `payment_date` is optional and defaults to the current time.
type PaymentCreateRequest struct {
	InvoiceID   string  `json:"invoice_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Method      string  `json:"method"`
	PaymentDate string  `json:"payment_date"`
	Reference   string  `json:"reference"`
	Notes       string  `json:"notes"`
}
