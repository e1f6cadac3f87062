package services

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// BookingSvcFacade is the booking lifecycle entry point. Every state-changing
// method checks the actor's role capability before touching persistence and
// emits exactly one audit entry atomically with the state change.
type BookingSvcFacade interface {
	// CreateBooking validates input, computes the pricing snapshot and soft
	// flags, and persists the booking in status pending. The returned strings
	// are review warnings (price mismatch, excess discount, possible
	// duplicate); they never block creation.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, []string, error)

	GetBookingByID(ctx context.Context, bookingID string, requestingUserID string) (*domain.Booking, error)
	ListBookings(ctx context.Context, params dto.ListBookingsParams, requestingUserID string) ([]domain.Booking, *string, error)
	ListPendingValidations(ctx context.Context, actorUserID string, flaggedOnly bool, limit int, nextToken *string) ([]domain.Booking, *string, error)

	// ApproveBooking transitions pending -> approved. Notes are optional.
	ApproveBooking(ctx context.Context, bookingID string, actorUserID string, notes string) (*domain.Booking, error)

	// RejectBooking transitions pending -> rejected. Notes are mandatory.
	RejectBooking(ctx context.Context, bookingID string, actorUserID string, notes string) (*domain.Booking, error)

	// CancelBooking transitions pending -> cancelled.
	CancelBooking(ctx context.Context, bookingID string, actorUserID string, notes string) (*domain.Booking, error)
}
