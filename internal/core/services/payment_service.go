package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
)

var (
	ErrPaymentExists    = errors.New("a payment already exists for this booking")
	ErrNegativeAmount   = errors.New("amount paid cannot be negative")
	ErrOverpayment      = errors.New("amount paid cannot exceed the booking total")
	ErrBookingNotBilled = errors.New("no payment recorded for this booking")
	ErrAlreadyRefunded  = errors.New("payment is already refunded")
	ErrNothingToRefund  = errors.New("no amount has been paid on this booking")
)

type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	bookingRepo portsrepo.BookingRepositoryFacade
	userSvc     portssvc.UserSvcFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, bookingRepo portsrepo.BookingRepositoryFacade, userSvc portssvc.UserSvcFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		userSvc:     userSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) requireActor(ctx context.Context, actorUserID string) (*domain.User, error) {
	actor, err := s.userSvc.GetUserByID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load acting user: %w", err)
	}
	return actor, nil
}

// RecordPayment implements portssvc.PaymentSvcFacade. The booking total is
// copied from the stored pricing snapshot; the status is derived, never
// supplied by the caller.
func (s *paymentService) RecordPayment(ctx context.Context, bookingID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireActor(ctx, creatorUserID)
	if err != nil {
		return nil, err
	}
	if !actor.CanCreateBooking() {
		return nil, fmt.Errorf("%w: role %s cannot record payments", apperrors.ErrForbidden, actor.Role)
	}

	if req.AmountPaid.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeAmount)
	}

	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		BookingID:     booking.BookingID,
		Status:        domain.DerivePaymentStatus(req.AmountPaid, booking.TotalAmount),
		Method:        req.Method,
		TransactionID: req.TransactionID,
		AmountPaid:    req.AmountPaid,
		TotalAmount:   booking.TotalAmount,
		PaymentDate:   req.PaymentDate,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	entry := domain.AuditLog{
		AuditID:   uuid.NewString(),
		ModelName: "Payment",
		ObjectID:  payment.PaymentID,
		Action:    domain.AuditCreate,
		UserID:    &creatorUserID,
		Changes: map[string]any{
			"booking_id":  booking.BookingID,
			"amount_paid": payment.AmountPaid.String(),
			"status":      string(payment.Status),
		},
		IPAddress: middleware.GetClientIPFromCtx(ctx),
		Timestamp: now,
	}

	if err := s.paymentRepo.SavePaymentWithAudit(ctx, payment, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrPaymentExists)
		}
		logger.Error("Failed to save payment", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("booking_id", booking.BookingID),
		slog.String("status", string(payment.Status)),
	)
	return &payment, nil
}

// UpdatePayment implements portssvc.PaymentSvcFacade. Unlike creation, an
// update may not push the amount paid past the booking total.
func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, actorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if !actor.CanCreateBooking() {
		return nil, fmt.Errorf("%w: role %s cannot update payments", apperrors.ErrForbidden, actor.Role)
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentRefunded {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrAlreadyRefunded)
	}

	changes := map[string]any{}
	if req.AmountPaid != nil {
		if req.AmountPaid.IsNegative() {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeAmount)
		}
		if req.AmountPaid.GreaterThan(payment.TotalAmount) {
			return nil, fmt.Errorf("%w: %w (paid %s, total %s)", apperrors.ErrValidation, ErrOverpayment, req.AmountPaid.StringFixed(2), payment.TotalAmount.StringFixed(2))
		}
		payment.AmountPaid = *req.AmountPaid
		changes["amount_paid"] = payment.AmountPaid.String()
	}
	if req.Method != nil {
		payment.Method = *req.Method
		changes["payment_method"] = string(payment.Method)
	}
	if req.TransactionID != nil {
		payment.TransactionID = *req.TransactionID
		changes["transaction_id"] = payment.TransactionID
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = req.PaymentDate
		changes["payment_date"] = req.PaymentDate.Format(time.RFC3339)
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
		changes["notes"] = payment.Notes
	}
	if len(changes) == 0 {
		return payment, nil
	}

	now := time.Now().UTC()
	payment.Status = domain.DerivePaymentStatus(payment.AmountPaid, payment.TotalAmount)
	changes["status"] = string(payment.Status)
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = actorUserID

	entry := domain.AuditLog{
		AuditID:   uuid.NewString(),
		ModelName: "Payment",
		ObjectID:  payment.PaymentID,
		Action:    domain.AuditUpdate,
		UserID:    &actorUserID,
		Changes:   changes,
		IPAddress: middleware.GetClientIPFromCtx(ctx),
		Timestamp: now,
	}

	if err := s.paymentRepo.UpdatePaymentWithAudit(ctx, *payment, entry); err != nil {
		logger.Error("Failed to update payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	logger.Info("Payment updated", slog.String("payment_id", payment.PaymentID), slog.String("status", string(payment.Status)))
	return payment, nil
}

// MarkRefunded implements portssvc.PaymentSvcFacade. Refunded is a terminal
// status; the derived statuses never produce it and updates after it are
// rejected.
func (s *paymentService) MarkRefunded(ctx context.Context, paymentID string, actorUserID string, notes string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if !actor.CanCreateBooking() {
		return nil, fmt.Errorf("%w: role %s cannot refund payments", apperrors.ErrForbidden, actor.Role)
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentRefunded {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrAlreadyRefunded)
	}
	if !payment.AmountPaid.IsPositive() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNothingToRefund)
	}

	now := time.Now().UTC()
	payment.Status = domain.PaymentRefunded
	if notes != "" {
		payment.Notes = notes
	}
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = actorUserID

	entry := domain.AuditLog{
		AuditID:   uuid.NewString(),
		ModelName: "Payment",
		ObjectID:  payment.PaymentID,
		Action:    domain.AuditUpdate,
		UserID:    &actorUserID,
		Changes: map[string]any{
			"status":          string(domain.PaymentRefunded),
			"amount_refunded": payment.AmountPaid.String(),
		},
		IPAddress: middleware.GetClientIPFromCtx(ctx),
		Timestamp: now,
		Notes:     notes,
	}

	if err := s.paymentRepo.UpdatePaymentWithAudit(ctx, *payment, entry); err != nil {
		logger.Error("Failed to refund payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to refund payment: %w", err)
	}

	logger.Info("Payment refunded", slog.String("payment_id", payment.PaymentID))
	return payment, nil
}

// GetPaymentByID implements portssvc.PaymentSvcFacade.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

// GetPaymentForBooking implements portssvc.PaymentSvcFacade.
func (s *paymentService) GetPaymentForBooking(ctx context.Context, bookingID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrNotFound, ErrBookingNotBilled)
		}
		return nil, err
	}
	return payment, nil
}

// ListPayments implements portssvc.PaymentSvcFacade.
func (s *paymentService) ListPayments(ctx context.Context, status *domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.paymentRepo.ListPayments(ctx, status, limit, nextToken)
}
