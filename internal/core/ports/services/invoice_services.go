package services

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// InvoiceRenderer renders an invoice PDF from the booking's stored pricing
// snapshot. Implementations must never recompute prices from the live
// package.
type InvoiceRenderer interface {
	RenderInvoice(ctx context.Context, invoice domain.Invoice, booking domain.Booking, pkg domain.TourPackage, payment *domain.Payment) ([]byte, error)
}

// InvoiceSvcFacade generates invoices for bookings. Generation is
// idempotent: re-requesting an invoice returns the existing one.
type InvoiceSvcFacade interface {
	GenerateInvoice(ctx context.Context, bookingID string, actorUserID string) (*domain.Invoice, []byte, error)
}
