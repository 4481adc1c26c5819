package entities

import (
	"testing"
	"time"
)

func TestDeriveInvoiceStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)

	cases := []struct {
		name    string
		paid    float64
		total   float64
		dueDate time.Time
		want    InvoiceStatus
	}{
		{name: "no payments before due date", paid: 0, total: 1000, dueDate: future, want: InvoiceStatusUnpaid},
		{name: "no payments no due date", paid: 0, total: 1000, want: InvoiceStatusUnpaid},
		{name: "no payments past due date", paid: 0, total: 1000, dueDate: past, want: InvoiceStatusOverdue},
		{name: "partial payment", paid: 400, total: 1000, dueDate: future, want: InvoiceStatusPartial},
		{name: "partial payment past due date", paid: 400, total: 1000, dueDate: past, want: InvoiceStatusPartial},
		{name: "fully paid", paid: 1000, total: 1000, dueDate: past, want: InvoiceStatusPaid},
		{name: "overpaid", paid: 1200, total: 1000, dueDate: past, want: InvoiceStatusPaid},
		{name: "zero total never paid", paid: 0, total: 0, want: InvoiceStatusUnpaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveInvoiceStatus(tc.paid, tc.total, tc.dueDate, now)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDeriveInvoiceStatus_Pure(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, -1, 0)
	first := DeriveInvoiceStatus(250, 1000, due, now)
	for i := 0; i < 10; i++ {
		if got := DeriveInvoiceStatus(250, 1000, due, now); got != first {
			t.Fatalf("derivation is not deterministic: %s vs %s", first, got)
		}
	}
}

func TestInvoice_DerivedStatus_PaidIsTerminal(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	inv := Invoice{Status: InvoiceStatusPaid, AmountPaid: 0, TotalAmount: 1000, DueDate: now.AddDate(0, -1, 0)}
	if got := inv.DerivedStatus(now); got != InvoiceStatusPaid {
		t.Fatalf("expected paid to stay terminal, got %s", got)
	}
}

func TestInvoice_AmountDue(t *testing.T) {
	inv := Invoice{TotalAmount: 1000, AmountPaid: 400}
	if due := inv.AmountDue(); due != 600 {
		t.Fatalf("expected 600, got %v", due)
	}
}

func TestNormalizeItems(t *testing.T) {
	items, total := NormalizeItems([]LineItem{
		{Description: "Design", Quantity: 10, Rate: 50},
		{Description: "Fixed fee", Amount: 300},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Amount != 500 {
		t.Fatalf("expected computed amount 500, got %v", items[0].Amount)
	}
	if items[1].Amount != 300 {
		t.Fatalf("expected explicit amount kept, got %v", items[1].Amount)
	}
	if total != 800 {
		t.Fatalf("expected total 800, got %v", total)
	}
}

func TestValidInvoiceStatus(t *testing.T) {
	for _, s := range []InvoiceStatus{InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusOverdue} {
		if !ValidInvoiceStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidInvoiceStatus("sent") {
		t.Fatalf("expected sent to be invalid")
	}
}

func TestValidPaymentMethod(t *testing.T) {
	if !ValidPaymentMethod(PaymentMethodBankTransfer) {
		t.Fatalf("expected bank_transfer to be valid")
	}
	if ValidPaymentMethod("check") {
		t.Fatalf("expected check to be invalid")
	}
}
