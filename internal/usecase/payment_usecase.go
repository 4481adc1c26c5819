package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"freelanceflow/internal/domain/entities"
	"freelanceflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidPaymentID        = errors.New("invalid payment id")
	ErrInvalidPaymentAmount    = errors.New("payment amount must be positive")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrPaymentExceedsAmountDue = errors.New("payment exceeds amount due")
	ErrInvoiceAlreadyPaid      = errors.New("invoice already paid")
	ErrLedgerConflict          = errors.New("concurrent ledger update, retry")
)

// CreatePaymentInput is the domain command for applying a payment.
type CreatePaymentInput struct {
	InvoiceID   string
	Amount      float64
	PaymentDate time.Time
	Method      entities.PaymentMethod
	Reference   string
	Notes       string
}

// PaymentListFilter narrows List results. Zero values mean "no filter";
// From/To are inclusive on PaymentDate.
type PaymentListFilter struct {
	InvoiceID string
	Method    entities.PaymentMethod
	From      time.Time
	To        time.Time
}

// IPaymentUseCase exposes the payment side of the billing ledger. Create and
// Delete keep the payment-sum invariant: the invoice update and the payment
// write commit in one transaction.

type IPaymentUseCase interface {
	Create(ctx context.Context, userID string, in CreatePaymentInput) (entities.Payment, error)
	Delete(ctx context.Context, userID, paymentID string) error
	GetByID(ctx context.Context, userID, id string) (entities.Payment, error)
	List(ctx context.Context, userID string, f PaymentListFilter) ([]entities.Payment, error)
	ListByInvoice(ctx context.Context, userID, invoiceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	invoices interfaces.IInvoiceRepository
	notifier interfaces.INotificationSink

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	invoices interfaces.IInvoiceRepository,
	notifier interfaces.INotificationSink,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, invoices: invoices, notifier: notifier}
}

func (u *PaymentUseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now().UTC()
}

func (u *PaymentUseCase) Create(ctx context.Context, userID string, in CreatePaymentInput) (entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Payment{}, ErrInvalidUserID
	}
	invoiceID := strings.TrimSpace(in.InvoiceID)
	if invoiceID == "" {
		return entities.Payment{}, ErrInvalidInvoiceID
	}
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	method := in.Method
	if method == "" {
		method = entities.PaymentMethodOther
	}
	if !entities.ValidPaymentMethod(method) {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if inv.ID == "" || inv.UserID != userID {
		return entities.Payment{}, ErrInvoiceNotFound
	}

	due := inv.AmountDue()
	if inv.Status == entities.InvoiceStatusPaid || due <= 0 {
		return entities.Payment{}, ErrInvoiceAlreadyPaid
	}
	if in.Amount > due {
		zlog().Infof("[payment][usecase] rejected invoice_id=%s amount=%.2f due=%.2f", invoiceID, in.Amount, due)
		return entities.Payment{}, ErrPaymentExceedsAmountDue
	}

	now := u.now()
	paymentDate := in.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}

	p := entities.Payment{
		ID:            uuid.NewString(),
		UserID:        userID,
		InvoiceID:     inv.ID,
		Amount:        in.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: method,
		Reference:     in.Reference,
		Notes:         in.Notes,
		CreatedAt:     now,
	}

	expectedPaid := inv.AmountPaid
	inv.AmountPaid += in.Amount
	inv.Status = entities.DeriveInvoiceStatus(inv.AmountPaid, inv.TotalAmount, inv.DueDate, now)
	inv.UpdatedAt = now

	if err := u.repo.Apply(ctx, p, inv, expectedPaid); err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			return entities.Payment{}, ErrLedgerConflict
		}
		return entities.Payment{}, err
	}
	zlog().Infof("[payment][usecase] applied payment_id=%s invoice_id=%s amount=%.2f status=%s", p.ID, inv.ID, p.Amount, inv.Status)

	u.notify(ctx, inv, p)
	return p, nil
}

// notify is best-effort: a failing sink never rolls back the payment.
func (u *PaymentUseCase) notify(ctx context.Context, inv entities.Invoice, p entities.Payment) {
	if u.notifier == nil {
		return
	}
	eventType := interfaces.EventPaymentReceived
	if inv.Status == entities.InvoiceStatusPaid {
		eventType = interfaces.EventInvoicePaid
	}
	event := interfaces.NotificationEvent{
		Type:      eventType,
		UserID:    p.UserID,
		InvoiceID: inv.ID,
		PaymentID: p.ID,
		Amount:    p.Amount,
	}
	if err := u.notifier.Publish(ctx, event); err != nil {
		zlog().Warnf("[payment][usecase] notification publish failed type=%s invoice_id=%s err=%v", eventType, inv.ID, err)
	}
}

func (u *PaymentUseCase) Delete(ctx context.Context, userID, paymentID string) error {
	p, err := u.ownedPayment(ctx, userID, paymentID)
	if err != nil {
		return err
	}

	inv, err := u.invoices.GetByID(ctx, p.InvoiceID)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		// Orphaned payment: the invoice was deleted out of band. Deleting the
		// payment alone is non-fatal.
		zlog().Warnf("[payment][usecase] reversing orphaned payment payment_id=%s invoice_id=%s", p.ID, p.InvoiceID)
		return u.repo.Reverse(ctx, p.ID, nil, 0)
	}

	now := u.now()
	expectedPaid := inv.AmountPaid
	inv.AmountPaid = inv.AmountPaid - p.Amount
	if inv.AmountPaid < 0 {
		inv.AmountPaid = 0
	}
	inv.Status = entities.DeriveInvoiceStatus(inv.AmountPaid, inv.TotalAmount, inv.DueDate, now)
	inv.UpdatedAt = now

	if err := u.repo.Reverse(ctx, p.ID, &inv, expectedPaid); err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			return ErrLedgerConflict
		}
		return err
	}
	zlog().Infof("[payment][usecase] reversed payment_id=%s invoice_id=%s amount=%.2f status=%s", p.ID, inv.ID, p.Amount, inv.Status)
	return nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, userID, id string) (entities.Payment, error) {
	return u.ownedPayment(ctx, userID, id)
}

func (u *PaymentUseCase) List(ctx context.Context, userID string, f PaymentListFilter) ([]entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	payments, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if f.InvoiceID != "" && p.InvoiceID != f.InvoiceID {
			continue
		}
		if f.Method != "" && p.PaymentMethod != f.Method {
			continue
		}
		if !f.From.IsZero() && p.PaymentDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && p.PaymentDate.After(f.To) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *PaymentUseCase) ListByInvoice(ctx context.Context, userID, invoiceID string) ([]entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}

	payments, err := u.repo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *PaymentUseCase) ownedPayment(ctx context.Context, userID, id string) (entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Payment{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" || p.UserID != userID {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}
