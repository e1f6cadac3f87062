package dto

import (
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse aggregates the last-30-days view. PendingValidations and
// AgentPerformance are populated only when the actor's role allows them.
type DashboardResponse struct {
	TotalBookings      int                        `json:"totalBookings"`
	TotalRevenue       decimal.Decimal            `json:"totalRevenue"`
	PendingValidations *int                       `json:"pendingValidations,omitempty"`
	TopPackages        []domain.PackagePopularity `json:"topPackages"`
	AgentPerformance   []domain.AgentPerformance  `json:"agentPerformance,omitempty"`
}

// ReportWindow describes the requested reporting date range.
type ReportWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SalesReportResponse is the detailed sales report for a window.
type SalesReportResponse struct {
	Window           ReportWindow              `json:"window"`
	Summary          domain.SalesSummary       `json:"summary"`
	AgentPerformance []domain.AgentPerformance `json:"agentPerformance"`
}

// FinancialReportResponse is the payment-ledger report for a window.
type FinancialReportResponse struct {
	Window  ReportWindow          `json:"window"`
	Summary domain.PaymentSummary `json:"summary"`
}
