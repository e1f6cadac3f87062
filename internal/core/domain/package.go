package domain

import "github.com/shopspring/decimal"

// TourPackage represents a sellable tour package in the catalog.
// Bookings snapshot its price at creation, so later edits never alter them.
type TourPackage struct {
	PackageID    string `json:"packageID"` // Primary Key (e.g., UUID)
	Name         string `json:"name"`
	Description  string `json:"description"`
	Destination  string `json:"destination"`
	DurationDays int    `json:"durationDays"`

	BasePrice     decimal.Decimal  `json:"basePrice"`
	SeasonalPrice *decimal.Decimal `json:"seasonalPrice,omitempty"` // Optional seasonal pricing

	TaxPercentage         decimal.Decimal `json:"taxPercentage"`
	CommissionPercentage  decimal.Decimal `json:"commissionPercentage"`
	MaxDiscountPercentage decimal.Decimal `json:"maxDiscountPercentage"`

	IsActive bool `json:"isActive"`
	AuditFields
}

// CurrentPrice returns the effective unit price: seasonal if set, else base.
func (p *TourPackage) CurrentPrice() decimal.Decimal {
	if p.SeasonalPrice != nil {
		return *p.SeasonalPrice
	}
	return p.BasePrice
}
