package repositories

import (
	"context"
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// ReportingRepositoryFacade provides the read-side aggregation queries.
// These are plain projections over booking/payment data; pricing snapshot
// fields are authoritative and never recomputed.
type ReportingRepositoryFacade interface {
	GetSalesSummary(ctx context.Context, from, to time.Time, createdBy *string) (*domain.SalesSummary, error)
	CountPendingValidations(ctx context.Context) (int, error)
	TopPackages(ctx context.Context, limit int) ([]domain.PackagePopularity, error)
	AgentPerformance(ctx context.Context, from, to time.Time, limit int) ([]domain.AgentPerformance, error)
	GetPaymentSummary(ctx context.Context, from, to time.Time) (*domain.PaymentSummary, error)
}
