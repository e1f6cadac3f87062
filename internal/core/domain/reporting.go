package domain

import "github.com/shopspring/decimal"

// SalesSummary aggregates bookings over a reporting window.
type SalesSummary struct {
	TotalBookings int             `json:"totalBookings"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// PackagePopularity ranks a package by how many bookings reference it.
type PackagePopularity struct {
	PackageID    string `json:"packageID"`
	PackageName  string `json:"packageName"`
	Destination  string `json:"destination"`
	BookingCount int    `json:"bookingCount"`
}

// AgentPerformance aggregates a sales agent's bookings and revenue.
type AgentPerformance struct {
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	TotalBookings int             `json:"totalBookings"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// PaymentSummary aggregates the payment ledger for financial reports.
type PaymentSummary struct {
	TotalCollected   decimal.Decimal `json:"totalCollected"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	PaidCount        int             `json:"paidCount"`
	PartialCount     int             `json:"partialCount"`
	PendingCount     int             `json:"pendingCount"`
}
