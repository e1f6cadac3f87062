package repositories

// RepositoryProvider bundles all repository facades so they can be injected
// into the service layer in one value.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	PackageRepo   PackageRepositoryFacade
	BookingRepo   BookingRepositoryFacade
	AuditRepo     AuditRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	InvoiceRepo   InvoiceRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}
