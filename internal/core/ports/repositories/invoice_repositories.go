package repositories

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// InvoiceRepositoryFacade is the persistence contract for invoices.
type InvoiceRepositoryFacade interface {
	// SaveInvoice inserts a new invoice. Returns apperrors.ErrDuplicate when
	// one already exists for the booking.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	FindInvoiceByBookingID(ctx context.Context, bookingID string) (*domain.Invoice, error)
}
