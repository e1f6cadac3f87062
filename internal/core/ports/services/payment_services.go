package services

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// PaymentSvcFacade is the payment ledger entry point. A booking has at most
// one payment row; the status is always recomputed from amount paid vs total.
type PaymentSvcFacade interface {
	// RecordPayment creates the payment for a booking. Fails with a conflict
	// when one already exists.
	RecordPayment(ctx context.Context, bookingID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// UpdatePayment adjusts an existing payment. The amount paid must not
	// exceed the booking total.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, actorUserID string) (*domain.Payment, error)

	// MarkRefunded sets the refunded status. Refunded is never derived from
	// amounts; this is the only way to reach it.
	MarkRefunded(ctx context.Context, paymentID string, actorUserID string, notes string) (*domain.Payment, error)

	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetPaymentForBooking(ctx context.Context, bookingID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, status *domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error)
}
