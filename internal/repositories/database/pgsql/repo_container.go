package pgsql

import (
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	packageRepo := newPgxPackageRepository(dbPool)
	bookingRepo := newPgxBookingRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:      userRepo,
		PackageRepo:   packageRepo,
		BookingRepo:   bookingRepo,
		AuditRepo:     auditRepo,
		PaymentRepo:   paymentRepo,
		InvoiceRepo:   invoiceRepo,
		ReportingRepo: reportingRepo,
	}
}
