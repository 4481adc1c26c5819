package request

import (
	"errors"
	"strings"
	"time"

	"freelanceflow/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are the accepted wire formats for date fields, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a wire date. Empty input yields the zero time.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// InvoiceCreateRequest is the payload for invoice creation. When `items` is
// empty the invoice is built from the project's time entries billed at `rate`.
type InvoiceCreateRequest struct {
	ClientID  string            `json:"client_id" binding:"required"`
	ProjectID string            `json:"project_id"`
	Items     []LineItemRequest `json:"items"`
	Rate      float64           `json:"rate"`
	IssueDate string            `json:"issue_date"`
	DueDate   string            `json:"due_date"`
	Notes     string            `json:"notes"`
}

func (r InvoiceCreateRequest) ResolveItems() []entities.LineItem {
	return toLineItems(r.Items)
}

// InvoiceUpdateRequest carries sparse updates; absent fields are left
// untouched. Sending `items` replaces the full line item list.
type InvoiceUpdateRequest struct {
	IssueDate *string            `json:"issue_date"`
	DueDate   *string            `json:"due_date"`
	Notes     *string            `json:"notes"`
	Items     *[]LineItemRequest `json:"items"`
}

func (r InvoiceUpdateRequest) ResolveItems() *[]entities.LineItem {
	if r.Items == nil {
		return nil
	}
	items := toLineItems(*r.Items)
	return &items
}

func toLineItems(in []LineItemRequest) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
		})
	}
	return items
}
