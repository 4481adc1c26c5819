package response

import (
	"testing"
	"time"

	"freelanceflow/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	issued := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	inv := entities.Invoice{
		ID:            "inv-1",
		UserID:        "user-1",
		InvoiceNumber: "INV-2025-JD-0001",
		ClientID:      "client-1",
		Items: []entities.LineItem{
			{Description: "Design", Quantity: 5, Rate: 100, Amount: 500},
		},
		TotalAmount: 500,
		AmountPaid:  200,
		Status:      entities.InvoiceStatusPartial,
		IssueDate:   issued,
		DueDate:     due,
	}

	got := FromInvoice(inv)

	if got.ID != "inv-1" || got.InvoiceNumber != "INV-2025-JD-0001" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.AmountDue != 300 {
		t.Fatalf("expected amount_due 300, got %v", got.AmountDue)
	}
	if got.Status != "partial" {
		t.Fatalf("expected status partial, got %s", got.Status)
	}
	if len(got.Items) != 1 || got.Items[0].Amount != 500 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
}

func TestFromInvoices_EmptySliceNotNil(t *testing.T) {
	got := FromInvoices(nil)
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no elements, got %d", len(got))
	}
}

func TestFromPayment(t *testing.T) {
	paidAt := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	p := entities.Payment{
		ID:            "pay-1",
		UserID:        "user-1",
		InvoiceID:     "inv-1",
		Amount:        200,
		PaymentDate:   paidAt,
		PaymentMethod: entities.PaymentMethodBankTransfer,
		Reference:     "wire-42",
	}

	got := FromPayment(p)

	if got.ID != "pay-1" || got.InvoiceID != "inv-1" || got.Amount != 200 {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got.Method != "bank_transfer" {
		t.Fatalf("expected method bank_transfer, got %s", got.Method)
	}
	if !got.PaymentDate.Equal(paidAt) {
		t.Fatalf("expected payment date %v, got %v", paidAt, got.PaymentDate)
	}
}
