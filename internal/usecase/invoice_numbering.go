package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"freelanceflow/internal/usecase/interfaces"
)

var ErrInvalidNumberingUserID = errors.New("invalid user id for invoice numbering")

const fallbackInitials = "USR"

// IInvoiceNumberingService assigns unique, per-user monotonically increasing
// invoice numbers.

type IInvoiceNumberingService interface {
	NextInvoiceNumber(ctx context.Context, userID, displayName string) (string, error)
}

// InvoiceNumberingService formats numbers as INV-{year}-{initials}-{seq}.
//
// The sequence is reserved through an atomic per-user counter rather than by
// parsing the most recent invoice number, so concurrent creators cannot mint
// duplicates. The counter is keyed by user only, so the sequence keeps
// counting across year boundaries.
type InvoiceNumberingService struct {
	Seq interfaces.IInvoiceSequenceRepository

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

var _ IInvoiceNumberingService = (*InvoiceNumberingService)(nil)

func NewInvoiceNumberingService(seq interfaces.IInvoiceSequenceRepository) *InvoiceNumberingService {
	return &InvoiceNumberingService{Seq: seq}
}

func (s *InvoiceNumberingService) NextInvoiceNumber(ctx context.Context, userID, displayName string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidNumberingUserID
	}

	seq, err := s.Seq.ReserveNext(ctx, userID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return fmt.Sprintf("INV-%d-%s-%04d", now.Year(), initialsFromName(displayName), seq), nil
}

// initialsFromName takes the uppercase first rune of each whitespace-separated
// token; an empty name falls back to "USR".
func initialsFromName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return fallbackInitials
	}
	var b strings.Builder
	for _, f := range fields {
		for _, r := range f {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}
