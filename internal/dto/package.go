package dto

import (
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePackageRequest is the payload for adding a package to the catalog.
type CreatePackageRequest struct {
	Name                  string           `json:"name" binding:"required,max=200"`
	Description           string           `json:"description"`
	Destination           string           `json:"destination" binding:"required,max=200"`
	DurationDays          int              `json:"durationDays" binding:"required,min=1"`
	BasePrice             decimal.Decimal  `json:"basePrice" binding:"required"`
	SeasonalPrice         *decimal.Decimal `json:"seasonalPrice,omitempty"`
	TaxPercentage         decimal.Decimal  `json:"taxPercentage"`
	CommissionPercentage  decimal.Decimal  `json:"commissionPercentage"`
	MaxDiscountPercentage decimal.Decimal  `json:"maxDiscountPercentage"`
}

// UpdatePackageRequest updates catalog fields; nil pointers leave the field
// untouched.
type UpdatePackageRequest struct {
	Name                  *string          `json:"name,omitempty"`
	Description           *string          `json:"description,omitempty"`
	Destination           *string          `json:"destination,omitempty"`
	DurationDays          *int             `json:"durationDays,omitempty"`
	BasePrice             *decimal.Decimal `json:"basePrice,omitempty"`
	SeasonalPrice         *decimal.Decimal `json:"seasonalPrice,omitempty"`
	TaxPercentage         *decimal.Decimal `json:"taxPercentage,omitempty"`
	CommissionPercentage  *decimal.Decimal `json:"commissionPercentage,omitempty"`
	MaxDiscountPercentage *decimal.Decimal `json:"maxDiscountPercentage,omitempty"`
	IsActive              *bool            `json:"isActive,omitempty"`
}

// PackageResponse is the API representation of a package.
type PackageResponse struct {
	PackageID             string           `json:"packageID"`
	Name                  string           `json:"name"`
	Description           string           `json:"description,omitempty"`
	Destination           string           `json:"destination"`
	DurationDays          int              `json:"durationDays"`
	BasePrice             decimal.Decimal  `json:"basePrice"`
	SeasonalPrice         *decimal.Decimal `json:"seasonalPrice,omitempty"`
	CurrentPrice          decimal.Decimal  `json:"currentPrice"`
	TaxPercentage         decimal.Decimal  `json:"taxPercentage"`
	CommissionPercentage  decimal.Decimal  `json:"commissionPercentage"`
	MaxDiscountPercentage decimal.Decimal  `json:"maxDiscountPercentage"`
	IsActive              bool             `json:"isActive"`
	CreatedAt             time.Time        `json:"createdAt"`
}

// PackagePricingResponse is the lightweight payload used by booking forms to
// prefill the quoted price.
type PackagePricingResponse struct {
	PackageID             string           `json:"packageID"`
	CurrentPrice          decimal.Decimal  `json:"currentPrice"`
	BasePrice             decimal.Decimal  `json:"basePrice"`
	SeasonalPrice         *decimal.Decimal `json:"seasonalPrice,omitempty"`
	TaxPercentage         decimal.Decimal  `json:"taxPercentage"`
	MaxDiscountPercentage decimal.Decimal  `json:"maxDiscountPercentage"`
}

// ListPackagesResponse is a paginated catalog listing.
type ListPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPackageResponse maps a domain package to its API representation.
func ToPackageResponse(p *domain.TourPackage) PackageResponse {
	return PackageResponse{
		PackageID:             p.PackageID,
		Name:                  p.Name,
		Description:           p.Description,
		Destination:           p.Destination,
		DurationDays:          p.DurationDays,
		BasePrice:             p.BasePrice,
		SeasonalPrice:         p.SeasonalPrice,
		CurrentPrice:          p.CurrentPrice(),
		TaxPercentage:         p.TaxPercentage,
		CommissionPercentage:  p.CommissionPercentage,
		MaxDiscountPercentage: p.MaxDiscountPercentage,
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt,
	}
}

// ToPackageResponses maps a slice of domain packages.
func ToPackageResponses(packages []domain.TourPackage) []PackageResponse {
	out := make([]PackageResponse, len(packages))
	for i := range packages {
		out[i] = ToPackageResponse(&packages[i])
	}
	return out
}
