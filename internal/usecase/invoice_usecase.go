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
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceClient = errors.New("invalid client id")
	ErrNoBillableWork       = errors.New("no line items and no time entries")
	ErrTotalBelowAmountPaid = errors.New("total amount below amount already paid")
	ErrInvoiceHasPayments   = errors.New("invoice has payments")
)

// CreateInvoiceInput is the domain command for invoice creation. When Items is
// empty the invoice is built from the project's time entries billed at Rate.
type CreateInvoiceInput struct {
	ClientID  string
	ProjectID string
	Items     []entities.LineItem
	Rate      float64
	IssueDate time.Time
	DueDate   time.Time
	Notes     string
}

// UpdateInvoiceInput updates are sparse; nil fields are left untouched.
// Items replacement recomputes the invoice total.
type UpdateInvoiceInput struct {
	IssueDate *time.Time
	DueDate   *time.Time
	Notes     *string
	Items     *[]entities.LineItem
}

// IInvoiceUseCase exposes the invoice side of the billing ledger.
//
// List performs the overdue sweep: it persists the overdue transition for
// unpaid invoices whose due date has passed before returning them. It is a
// side-effecting read.

type IInvoiceUseCase interface {
	Create(ctx context.Context, userID, displayName string, in CreateInvoiceInput) (entities.Invoice, error)
	List(ctx context.Context, userID string, status entities.InvoiceStatus) ([]entities.Invoice, error)
	GetByID(ctx context.Context, userID, id string) (entities.Invoice, error)
	Update(ctx context.Context, userID, id string, in UpdateInvoiceInput) (entities.Invoice, error)
	Delete(ctx context.Context, userID, id string) error
	MarkPaid(ctx context.Context, userID, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo        interfaces.IInvoiceRepository
	payments    interfaces.IPaymentRepository
	timeEntries interfaces.ITimeEntryReader
	numbering   IInvoiceNumberingService

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	payments interfaces.IPaymentRepository,
	timeEntries interfaces.ITimeEntryReader,
	numbering IInvoiceNumberingService,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, payments: payments, timeEntries: timeEntries, numbering: numbering}
}

func (u *InvoiceUseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now().UTC()
}

func (u *InvoiceUseCase) Create(ctx context.Context, userID, displayName string, in CreateInvoiceInput) (entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Invoice{}, ErrInvalidUserID
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceClient
	}

	items := in.Items
	if len(items) == 0 {
		entries, err := u.timeEntries.ListByProject(ctx, userID, strings.TrimSpace(in.ProjectID))
		if err != nil {
			return entities.Invoice{}, err
		}
		if len(entries) == 0 {
			zlog().Infof("[invoice][usecase] create rejected user_id=%s project_id=%s reason=no-billable-work", userID, in.ProjectID)
			return entities.Invoice{}, ErrNoBillableWork
		}
		items = make([]entities.LineItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, entities.LineItem{
				Description: e.Description,
				Quantity:    e.Hours,
				Rate:        in.Rate,
			})
		}
	}
	items, total := entities.NormalizeItems(items)

	number, err := u.numbering.NextInvoiceNumber(ctx, userID, displayName)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := u.now()
	issueDate := in.IssueDate
	if issueDate.IsZero() {
		issueDate = now
	}

	inv := entities.Invoice{
		ID:            uuid.NewString(),
		UserID:        userID,
		ClientID:      clientID,
		ProjectID:     strings.TrimSpace(in.ProjectID),
		InvoiceNumber: number,
		Items:         items,
		TotalAmount:   total,
		AmountPaid:    0,
		Status:        entities.InvoiceStatusUnpaid,
		IssueDate:     issueDate,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	zlog().Infof("[invoice][usecase] created invoice_id=%s user_id=%s number=%s total=%.2f", created.ID, userID, number, total)
	return created, nil
}

// List returns the user's invoices with derived statuses. Invoices whose
// stored status changed to overdue are persisted before being returned.
func (u *InvoiceUseCase) List(ctx context.Context, userID string, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	invoices, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]entities.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		derived := inv.DerivedStatus(now)
		if derived != inv.Status {
			if _, err := u.repo.UpdateStatus(ctx, inv.ID, derived); err != nil {
				// The sweep is best-effort per invoice; the derived status is
				// still what callers observe.
				zlog().Warnf("[invoice][usecase] overdue sweep persist failed invoice_id=%s err=%v", inv.ID, err)
			}
			inv.Status = derived
		}
		if status != "" && inv.Status != status {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, userID, id string) (entities.Invoice, error) {
	inv, err := u.ownedInvoice(ctx, userID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Status = inv.DerivedStatus(u.now())
	return inv, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, userID, id string, in UpdateInvoiceInput) (entities.Invoice, error) {
	inv, err := u.ownedInvoice(ctx, userID, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	if in.IssueDate != nil {
		inv.IssueDate = *in.IssueDate
	}
	if in.DueDate != nil {
		inv.DueDate = *in.DueDate
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if in.Items != nil {
		items, total := entities.NormalizeItems(*in.Items)
		if total < inv.AmountPaid {
			return entities.Invoice{}, ErrTotalBelowAmountPaid
		}
		inv.Items = items
		inv.TotalAmount = total
	}

	now := u.now()
	inv.Status = inv.DerivedStatus(now)
	inv.UpdatedAt = now

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		// Deleted between the ownership read and the conditional write.
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

// Delete refuses to remove an invoice that still has payments; reverse them
// first. This is the chosen orphan policy for the whole ledger.
func (u *InvoiceUseCase) Delete(ctx context.Context, userID, id string) error {
	inv, err := u.ownedInvoice(ctx, userID, id)
	if err != nil {
		return err
	}

	payments, err := u.payments.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return ErrInvoiceHasPayments
	}
	return u.repo.Delete(ctx, inv.ID)
}

// MarkPaid is the administrative override: it forces status to paid without a
// payment record and without touching amount_paid.
func (u *InvoiceUseCase) MarkPaid(ctx context.Context, userID, id string) (entities.Invoice, error) {
	inv, err := u.ownedInvoice(ctx, userID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return inv, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusPaid)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	zlog().Infof("[invoice][usecase] marked paid invoice_id=%s user_id=%s", inv.ID, userID)
	return updated, nil
}

// ownedInvoice loads an invoice and enforces user ownership; an invoice owned
// by another user is indistinguishable from a missing one.
func (u *InvoiceUseCase) ownedInvoice(ctx context.Context, userID, id string) (entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Invoice{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" || inv.UserID != userID {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}
