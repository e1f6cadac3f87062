package services

import (
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/platform/config"
)

// NewServiceContainer wires the repositories into the full service set.
// The audit service comes first since the write-side services record through
// it; the user service doubles as the actor lookup for authorization checks.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderer portssvc.InvoiceRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Audit = NewAuditService(repos.AuditRepo, repos.UserRepo)
	container.User = NewUserService(repos.UserRepo, container.Audit)
	container.Auth = NewAuthService(cfg, container.User)
	container.Package = NewPackageService(repos.PackageRepo, repos.BookingRepo, container.User, container.Audit)
	container.Booking = NewBookingService(repos.BookingRepo, repos.PackageRepo, container.User)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.BookingRepo, container.User)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.BookingRepo, repos.PackageRepo, repos.PaymentRepo, container.User, renderer)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.User)

	return container
}
