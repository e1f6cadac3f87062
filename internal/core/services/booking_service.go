package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
	"github.com/lebinlenin2004/TravelSoftware/internal/utils"
	"github.com/lebinlenin2004/TravelSoftware/internal/utils/pricing"
)

var (
	ErrPackageInactive      = errors.New("package is not active")
	ErrTravelDateInPast     = errors.New("travel date cannot be in the past")
	ErrInvalidPhone         = errors.New("phone number must be exactly 10 digits")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidCustomerName  = errors.New("customer name must be at least 2 characters of letters and spaces")
	ErrNegativeDiscount     = errors.New("discount percentage cannot be negative")
	ErrRejectionNotesNeeded = errors.New("validation notes are required when rejecting a booking")
	ErrAlreadyValidated     = errors.New("booking has already been validated")
)

const (
	dateLayout               = "2006-01-02"
	bookingNumberMaxAttempts = 5
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	nonDigitPattern = regexp.MustCompile(`[^\d]`)
)

// bookingService implements the booking lifecycle state machine.
type bookingService struct {
	bookingRepo portsrepo.BookingRepositoryFacade
	packageRepo portsrepo.PackageRepositoryFacade
	userSvc     portssvc.UserSvcFacade
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookingRepo portsrepo.BookingRepositoryFacade, packageRepo portsrepo.PackageRepositoryFacade, userSvc portssvc.UserSvcFacade) portssvc.BookingSvcFacade {
	return &bookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		userSvc:     userSvc,
	}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// requireActor loads the acting user for an authorization check.
func (s *bookingService) requireActor(ctx context.Context, actorUserID string) (*domain.User, error) {
	actor, err := s.userSvc.GetUserByID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load acting user: %w", err)
	}
	return actor, nil
}

// newBookingNumber builds a date-stamped booking number with a random
// uppercase hex suffix, e.g. BK20250314A1B2C3.
func newBookingNumber(now time.Time) (string, error) {
	suffix, err := utils.GenerateReferenceSuffix(3)
	if err != nil {
		return "", fmt.Errorf("failed to generate booking number suffix: %w", err)
	}
	return fmt.Sprintf("BK%s%s", now.Format("20060102"), suffix), nil
}

// normalizePhone strips separators and validates the 10-digit requirement.
func normalizePhone(phone string) (string, error) {
	cleaned := nonDigitPattern.ReplaceAllString(phone, "")
	if len(cleaned) != 10 {
		return "", ErrInvalidPhone
	}
	return cleaned, nil
}

// validateCreateRequest runs the structural (hard) validations. Failures here
// return validation errors before anything is persisted; soft pricing checks
// are handled separately and never block.
func (s *bookingService) validateCreateRequest(ctx context.Context, req *dto.CreateBookingRequest) (*domain.TourPackage, time.Time, error) {
	name := strings.TrimSpace(req.CustomerName)
	if len(name) < 2 || !namePattern.MatchString(name) {
		return nil, time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidCustomerName)
	}
	req.CustomerName = name

	email := strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	if !emailPattern.MatchString(email) {
		return nil, time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidEmail)
	}
	req.CustomerEmail = email

	phone, err := normalizePhone(req.CustomerPhone)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	req.CustomerPhone = phone

	if req.DiscountPercentage.IsNegative() {
		return nil, time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeDiscount)
	}

	travelDate, err := time.ParseInLocation(dateLayout, req.TravelDate, time.UTC)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: invalid travel date %q, expected YYYY-MM-DD", apperrors.ErrValidation, req.TravelDate)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if travelDate.Before(today) {
		return nil, time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrTravelDateInPast)
	}

	pkg, err := s.packageRepo.FindPackageByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, time.Time{}, fmt.Errorf("%w: package %s not found", apperrors.ErrValidation, req.PackageID)
		}
		return nil, time.Time{}, fmt.Errorf("failed to fetch package: %w", err)
	}
	if !pkg.IsActive {
		return nil, time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrPackageInactive)
	}

	return pkg, travelDate, nil
}

// checkDuplicate sets the advisory duplicate flag. The read and the later
// insert are not serialized, so two concurrent duplicate submissions may both
// pass unflagged; that race is accepted and the flag stays advisory.
func (s *bookingService) checkDuplicate(ctx context.Context, booking *domain.Booking) (bool, error) {
	count, err := s.bookingRepo.CountDuplicateBookings(ctx, booking.CustomerEmail, booking.PackageID, booking.TravelDate, booking.BookingID)
	if err != nil {
		return false, fmt.Errorf("failed to run duplicate check: %w", err)
	}
	return count > 0, nil
}

// CreateBooking implements portssvc.BookingSvcFacade.
func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, []string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireActor(ctx, creatorUserID)
	if err != nil {
		return nil, nil, err
	}
	if !actor.CanCreateBooking() {
		logger.Warn("Actor not allowed to create bookings", slog.String("role", string(actor.Role)))
		return nil, nil, fmt.Errorf("%w: role %s cannot create bookings", apperrors.ErrForbidden, actor.Role)
	}

	pkg, travelDate, err := s.validateCreateRequest(ctx, &req)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	totals := pricing.ComputeTotals(req.PackagePrice, req.DiscountPercentage, pkg.TaxPercentage, pkg.CommissionPercentage)
	flags := pricing.ValidatePricing(pkg, req.NumberOfTravelers, req.PackagePrice, req.DiscountPercentage)

	booking := domain.Booking{
		BookingID:          uuid.NewString(),
		PackageID:          pkg.PackageID,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		CustomerAddress:    req.CustomerAddress,
		TravelDate:         travelDate,
		NumberOfTravelers:  req.NumberOfTravelers,
		PackagePrice:       totals.PackagePrice,
		DiscountPercentage: totals.DiscountPercentage,
		DiscountAmount:     totals.DiscountAmount,
		Subtotal:           totals.Subtotal,
		TaxAmount:          totals.TaxAmount,
		TotalAmount:        totals.TotalAmount,
		CommissionAmount:   totals.CommissionAmount,
		PriceMismatchFlag:  flags.PriceMismatch,
		ExcessDiscountFlag: flags.ExcessDiscount,
		Status:             domain.BookingPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	warnings := append([]string(nil), flags.Reasons...)

	isDuplicate, err := s.checkDuplicate(ctx, &booking)
	if err != nil {
		return nil, nil, err
	}
	if isDuplicate {
		booking.DuplicateBookingFlag = true
		warnings = append(warnings, "possible duplicate: a pending or approved booking exists for the same customer, package and travel date")
	}

	// Booking numbers are globally unique; regenerate and retry on collision.
	for attempt := 0; attempt < bookingNumberMaxAttempts; attempt++ {
		booking.BookingNumber, err = newBookingNumber(now)
		if err != nil {
			return nil, nil, err
		}

		entry := domain.AuditLog{
			AuditID:   uuid.NewString(),
			ModelName: "Booking",
			ObjectID:  booking.BookingID,
			Action:    domain.AuditCreate,
			UserID:    &creatorUserID,
			Changes:   map[string]any{"booking_number": booking.BookingNumber},
			IPAddress: middleware.GetClientIPFromCtx(ctx),
			Timestamp: now,
		}

		err = s.bookingRepo.SaveBookingWithAudit(ctx, booking, entry)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save booking", slog.String("error", err.Error()))
			return nil, nil, fmt.Errorf("failed to save booking: %w", err)
		}
		logger.Warn("Booking number collision, retrying", slog.String("booking_number", booking.BookingNumber))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not assign a unique booking number", apperrors.ErrInternal)
	}

	logger.Info("Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("booking_number", booking.BookingNumber),
		slog.Bool("flagged", booking.IsFlagged()),
	)
	return &booking, warnings, nil
}

// GetBookingByID implements portssvc.BookingSvcFacade. Sales agents may only
// view their own bookings.
func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string, requestingUserID string) (*domain.Booking, error) {
	actor, err := s.requireActor(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if actor.Role == domain.RoleSalesAgent && !actor.IsAdmin() && booking.CreatedBy != requestingUserID {
		return nil, fmt.Errorf("%w: sales agents may only view their own bookings", apperrors.ErrForbidden)
	}

	return booking, nil
}

// ListBookings implements portssvc.BookingSvcFacade.
func (s *bookingService) ListBookings(ctx context.Context, params dto.ListBookingsParams, requestingUserID string) ([]domain.Booking, *string, error) {
	actor, err := s.requireActor(ctx, requestingUserID)
	if err != nil {
		return nil, nil, err
	}

	filter := portsrepo.ListBookingsFilter{
		Status:      params.Status,
		FlaggedOnly: params.FlaggedOnly,
	}
	if actor.Role == domain.RoleSalesAgent && !actor.IsAdmin() {
		filter.CreatedBy = &requestingUserID
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	return s.bookingRepo.ListBookings(ctx, filter, limit, params.NextToken)
}

// ListPendingValidations implements portssvc.BookingSvcFacade.
func (s *bookingService) ListPendingValidations(ctx context.Context, actorUserID string, flaggedOnly bool, limit int, nextToken *string) ([]domain.Booking, *string, error) {
	actor, err := s.requireActor(ctx, actorUserID)
	if err != nil {
		return nil, nil, err
	}
	if !actor.CanValidateBooking() {
		return nil, nil, fmt.Errorf("%w: role %s cannot view pending validations", apperrors.ErrForbidden, actor.Role)
	}

	pending := domain.BookingPending
	if limit <= 0 {
		limit = 20
	}
	return s.bookingRepo.ListBookings(ctx, portsrepo.ListBookingsFilter{Status: &pending, FlaggedOnly: flaggedOnly}, limit, nextToken)
}

// transition performs the shared approve/reject/cancel flow: capability check,
// pending-only precondition, validation metadata and a matching audit entry
// written atomically with the status change.
func (s *bookingService) transition(ctx context.Context, bookingID, actorUserID, notes string, target domain.BookingStatus, action domain.AuditAction) (*domain.Booking, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if !actor.CanValidateBooking() {
		logger.Warn("Actor not allowed to validate bookings", slog.String("role", string(actor.Role)))
		return nil, fmt.Errorf("%w: role %s cannot validate bookings", apperrors.ErrForbidden, actor.Role)
	}

	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingPending {
		// Re-validation is reported, not silently applied.
		return nil, fmt.Errorf("%w: %w (current status %s)", apperrors.ErrConflict, ErrAlreadyValidated, booking.Status)
	}

	now := time.Now().UTC()
	booking.Status = target
	booking.ValidatedBy = &actorUserID
	booking.ValidatedAt = &now
	if notes != "" {
		booking.ValidationNotes = notes
	}
	booking.LastUpdatedAt = now
	booking.LastUpdatedBy = actorUserID

	entry := domain.AuditLog{
		AuditID:   uuid.NewString(),
		ModelName: "Booking",
		ObjectID:  booking.BookingID,
		Action:    action,
		UserID:    &actorUserID,
		Changes:   map[string]any{"status": string(target)},
		IPAddress: middleware.GetClientIPFromCtx(ctx),
		Timestamp: now,
		Notes:     notes,
	}

	if err := s.bookingRepo.UpdateBookingValidationWithAudit(ctx, *booking, entry); err != nil {
		logger.Error("Failed to persist booking transition", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to persist booking transition: %w", err)
	}

	logger.Info("Booking transitioned",
		slog.String("booking_id", booking.BookingID),
		slog.String("status", string(target)),
	)
	return booking, nil
}

// ApproveBooking implements portssvc.BookingSvcFacade. Notes are optional.
func (s *bookingService) ApproveBooking(ctx context.Context, bookingID string, actorUserID string, notes string) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, actorUserID, notes, domain.BookingApproved, domain.AuditApprove)
}

// RejectBooking implements portssvc.BookingSvcFacade. Notes are mandatory.
func (s *bookingService) RejectBooking(ctx context.Context, bookingID string, actorUserID string, notes string) (*domain.Booking, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrRejectionNotesNeeded)
	}
	return s.transition(ctx, bookingID, actorUserID, notes, domain.BookingRejected, domain.AuditReject)
}

// CancelBooking implements portssvc.BookingSvcFacade.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, actorUserID string, notes string) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, actorUserID, notes, domain.BookingCancelled, domain.AuditCancel)
}
