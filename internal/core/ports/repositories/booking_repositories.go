package repositories

import (
	"context"
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// ListBookingsFilter narrows booking list queries.
type ListBookingsFilter struct {
	Status      *domain.BookingStatus
	CreatedBy   *string // restricts to a creating user (sales-agent scoping)
	FlaggedOnly bool    // only bookings with at least one review flag
}

// BookingRepositoryFacade is the persistence contract for bookings. The
// *WithAudit methods must persist the state change and the audit entry in a
// single database transaction: both happen or neither.
type BookingRepositoryFacade interface {
	// SaveBookingWithAudit inserts a new booking plus its create audit entry.
	// Returns apperrors.ErrDuplicate when the booking number collides.
	SaveBookingWithAudit(ctx context.Context, booking domain.Booking, entry domain.AuditLog) error

	// UpdateBookingValidationWithAudit persists a status transition (approve,
	// reject, cancel) together with its audit entry.
	UpdateBookingValidationWithAudit(ctx context.Context, booking domain.Booking, entry domain.AuditLog) error

	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// CountDuplicateBookings counts bookings with the same customer email,
	// package and travel date in status pending or approved, excluding
	// excludeBookingID so recomputation never flags a booking against itself.
	CountDuplicateBookings(ctx context.Context, customerEmail, packageID string, travelDate time.Time, excludeBookingID string) (int, error)

	// CountBookingsByPackage reports how many bookings reference a package,
	// used to protect packages from deletion while referenced.
	CountBookingsByPackage(ctx context.Context, packageID string) (int, error)

	ListBookings(ctx context.Context, filter ListBookingsFilter, limit int, nextToken *string) ([]domain.Booking, *string, error)
}
