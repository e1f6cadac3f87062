package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
)

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	bookingRepo portsrepo.BookingRepositoryFacade
	packageRepo portsrepo.PackageRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	userSvc     portssvc.UserSvcFacade
	renderer    portssvc.InvoiceRenderer
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	bookingRepo portsrepo.BookingRepositoryFacade,
	packageRepo portsrepo.PackageRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	userSvc portssvc.UserSvcFacade,
	renderer portssvc.InvoiceRenderer,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		paymentRepo: paymentRepo,
		userSvc:     userSvc,
		renderer:    renderer,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// newInvoiceNumber derives the invoice number from the invoice date and the
// booking's unique reference, e.g. INV20250314A1B2C3.
func newInvoiceNumber(invoiceDate time.Time, bookingNumber string) string {
	suffix := strings.TrimPrefix(bookingNumber, "BK")
	if len(suffix) > 8 {
		suffix = suffix[8:]
	}
	return fmt.Sprintf("INV%s%s", invoiceDate.Format("20060102"), suffix)
}

// GenerateInvoice implements portssvc.InvoiceSvcFacade. The invoice row is
// created once; later calls re-render the PDF from the same stored snapshot,
// so the bytes stay stable across package price edits.
func (s *invoiceService) GenerateInvoice(ctx context.Context, bookingID string, actorUserID string) (*domain.Invoice, []byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userSvc.GetUserByID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrUnauthorized
		}
		return nil, nil, fmt.Errorf("failed to load acting user: %w", err)
	}

	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if actor.Role == domain.RoleSalesAgent && !actor.IsAdmin() && booking.CreatedBy != actorUserID {
		return nil, nil, fmt.Errorf("%w: sales agents may only invoice their own bookings", apperrors.ErrForbidden)
	}

	pkg, err := s.packageRepo.FindPackageByID(ctx, booking.PackageID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch package for invoice: %w", err)
	}

	payment, err := s.paymentRepo.FindPaymentByBookingID(ctx, bookingID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to fetch payment for invoice: %w", err)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByBookingID(ctx, bookingID)
	if errors.Is(err, apperrors.ErrNotFound) {
		invoice, err = s.createInvoice(ctx, booking, actorUserID)
	}
	if err != nil {
		return nil, nil, err
	}

	pdf, err := s.renderer.RenderInvoice(ctx, *invoice, *booking, *pkg, payment)
	if err != nil {
		logger.Error("Failed to render invoice PDF", slog.String("error", err.Error()), slog.String("invoice_id", invoice.InvoiceID))
		return nil, nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	logger.Info("Invoice generated",
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("booking_id", bookingID),
	)
	return invoice, pdf, nil
}

func (s *invoiceService) createInvoice(ctx context.Context, booking *domain.Booking, actorUserID string) (*domain.Invoice, error) {
	now := time.Now().UTC()
	due := now.AddDate(0, 0, 15)
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: newInvoiceNumber(now, booking.BookingNumber),
		BookingID:     booking.BookingID,
		InvoiceDate:   now,
		DueDate:       &due,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a concurrent generation race; the existing row wins.
			return s.invoiceRepo.FindInvoiceByBookingID(ctx, booking.BookingID)
		}
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	return &invoice, nil
}
