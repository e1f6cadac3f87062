// Package pricing implements the booking pricing engine: pure computations
// that turn a package, traveler count and discount into the monetary snapshot
// stored on a booking, plus the advisory review checks.
package pricing

import (
	"fmt"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceTolerance is the maximum accepted difference between the
// caller-supplied package price and the expected one before the
// price-mismatch flag is raised.
var PriceTolerance = decimal.NewFromFloat(0.01)

var oneHundred = decimal.NewFromInt(100)

// Totals is the full pricing snapshot of a booking. All values are rounded to
// 2 decimal places at each intermediate step, so the stored fields are
// internally additive: Subtotal = PackagePrice - DiscountAmount and
// TotalAmount = Subtotal + TaxAmount hold exactly.
type Totals struct {
	PackagePrice       decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	Subtotal           decimal.Decimal
	TaxAmount          decimal.Decimal
	TotalAmount        decimal.Decimal
	CommissionAmount   decimal.Decimal
}

// Flags holds the advisory review markers produced by ValidatePricing. They
// never block a booking; Reasons carries the human-readable explanations
// reported back to the caller as warnings.
type Flags struct {
	PriceMismatch  bool
	ExcessDiscount bool
	Reasons        []string
}

// ComputeTotals calculates the pricing snapshot for a booking. Rounding is
// half away from zero to 2 decimal places after every step.
func ComputeTotals(packagePrice, discountPct, taxPct, commissionPct decimal.Decimal) Totals {
	discountAmount := decimal.Zero.Round(2)
	if discountPct.GreaterThan(decimal.Zero) {
		discountAmount = packagePrice.Mul(discountPct.Div(oneHundred)).Round(2)
	}

	subtotal := packagePrice.Sub(discountAmount).Round(2)
	taxAmount := subtotal.Mul(taxPct.Div(oneHundred)).Round(2)
	totalAmount := subtotal.Add(taxAmount).Round(2)
	commissionAmount := subtotal.Mul(commissionPct.Div(oneHundred)).Round(2)

	return Totals{
		PackagePrice:       packagePrice,
		DiscountPercentage: discountPct,
		DiscountAmount:     discountAmount,
		Subtotal:           subtotal,
		TaxAmount:          taxAmount,
		TotalAmount:        totalAmount,
		CommissionAmount:   commissionAmount,
	}
}

// ValidatePricing runs the soft pricing checks for a booking against its
// package: price mismatch (supplied price deviates from effective unit price
// times travelers by more than the tolerance) and excess discount (discount
// above the package maximum).
func ValidatePricing(pkg *domain.TourPackage, travelers int, packagePrice, discountPct decimal.Decimal) Flags {
	var flags Flags

	expected := pkg.CurrentPrice().Mul(decimal.NewFromInt(int64(travelers)))
	if packagePrice.Sub(expected).Abs().GreaterThan(PriceTolerance) {
		flags.PriceMismatch = true
		flags.Reasons = append(flags.Reasons,
			fmt.Sprintf("price mismatch: expected %s, got %s", expected.StringFixed(2), packagePrice.StringFixed(2)))
	}

	if discountPct.GreaterThan(pkg.MaxDiscountPercentage) {
		flags.ExcessDiscount = true
		flags.Reasons = append(flags.Reasons,
			fmt.Sprintf("excess discount: %s%% exceeds max %s%%", discountPct.String(), pkg.MaxDiscountPercentage.String()))
	}

	return flags
}
