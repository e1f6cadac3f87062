package repositories

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// PaymentRepositoryFacade is the persistence contract for the payment ledger.
// The *WithAudit methods persist the payment change and its audit entry in a
// single database transaction.
type PaymentRepositoryFacade interface {
	// SavePaymentWithAudit inserts a new payment plus its create audit entry.
	// Returns apperrors.ErrDuplicate when a payment already exists for the
	// booking (one-to-one constraint).
	SavePaymentWithAudit(ctx context.Context, payment domain.Payment, entry domain.AuditLog) error

	UpdatePaymentWithAudit(ctx context.Context, payment domain.Payment, entry domain.AuditLog) error

	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	FindPaymentByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error)

	ListPayments(ctx context.Context, status *domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error)
}
