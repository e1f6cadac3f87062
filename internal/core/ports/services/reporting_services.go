package services

import (
	"context"
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// ReportingSvcFacade provides the read-side analytics projections. All
// methods are role-gated; sales agents only see their own numbers on the
// dashboard.
type ReportingSvcFacade interface {
	Dashboard(ctx context.Context, actorUserID string) (*dto.DashboardResponse, error)
	SalesReport(ctx context.Context, actorUserID string, from, to time.Time) (*dto.SalesReportResponse, error)
	FinancialReport(ctx context.Context, actorUserID string, from, to time.Time) (*dto.FinancialReportResponse, error)
}
