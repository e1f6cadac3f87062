package pricing_test

import (
	"testing"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/lebinlenin2004/TravelSoftware/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testPackage() *domain.TourPackage {
	return &domain.TourPackage{
		PackageID:             "pkg-1",
		Name:                  "Golden Triangle",
		Destination:           "Delhi",
		BasePrice:             dec("10000.00"),
		TaxPercentage:         dec("18.00"),
		CommissionPercentage:  dec("10.00"),
		MaxDiscountPercentage: dec("20.00"),
		IsActive:              true,
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name          string
		packagePrice  string
		discountPct   string
		taxPct        string
		commissionPct string
		wantDiscount  string
		wantSubtotal  string
		wantTax       string
		wantTotal     string
		wantComm      string
	}{
		{
			name:         "two travelers with ten percent discount",
			packagePrice: "20000.00", discountPct: "10", taxPct: "18", commissionPct: "10",
			wantDiscount: "2000.00", wantSubtotal: "18000.00", wantTax: "3240.00",
			wantTotal: "21240.00", wantComm: "1800.00",
		},
		{
			name:         "zero discount leaves subtotal equal to package price",
			packagePrice: "5499.99", discountPct: "0", taxPct: "18", commissionPct: "10",
			wantDiscount: "0.00", wantSubtotal: "5499.99", wantTax: "990.00",
			wantTotal: "6489.99", wantComm: "550.00",
		},
		{
			name:         "intermediate rounding keeps fields additive",
			packagePrice: "999.95", discountPct: "7.5", taxPct: "18", commissionPct: "12.5",
			wantDiscount: "75.00", wantSubtotal: "924.95", wantTax: "166.49",
			wantTotal: "1091.44", wantComm: "115.62",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ComputeTotals(dec(tt.packagePrice), dec(tt.discountPct), dec(tt.taxPct), dec(tt.commissionPct))

			assert.Equal(t, tt.wantDiscount, got.DiscountAmount.StringFixed(2))
			assert.Equal(t, tt.wantSubtotal, got.Subtotal.StringFixed(2))
			assert.Equal(t, tt.wantTax, got.TaxAmount.StringFixed(2))
			assert.Equal(t, tt.wantTotal, got.TotalAmount.StringFixed(2))
			assert.Equal(t, tt.wantComm, got.CommissionAmount.StringFixed(2))

			// The stored snapshot must be internally additive.
			assert.True(t, got.Subtotal.Equal(got.PackagePrice.Sub(got.DiscountAmount)))
			assert.True(t, got.TotalAmount.Equal(got.Subtotal.Add(got.TaxAmount)))
		})
	}
}

func TestValidatePricing_NoFlags(t *testing.T) {
	pkg := testPackage()

	flags := pricing.ValidatePricing(pkg, 2, dec("20000.00"), dec("10"))

	assert.False(t, flags.PriceMismatch)
	assert.False(t, flags.ExcessDiscount)
	assert.Empty(t, flags.Reasons)
}

func TestValidatePricing_PriceMismatch(t *testing.T) {
	pkg := testPackage()

	flags := pricing.ValidatePricing(pkg, 2, dec("19500.00"), dec("0"))

	assert.True(t, flags.PriceMismatch)
	require.Len(t, flags.Reasons, 1)
	assert.Contains(t, flags.Reasons[0], "price mismatch")
}

func TestValidatePricing_WithinTolerance(t *testing.T) {
	pkg := testPackage()

	// 0.01 off the expected price is still acceptable.
	flags := pricing.ValidatePricing(pkg, 2, dec("20000.01"), dec("0"))

	assert.False(t, flags.PriceMismatch)
}

func TestValidatePricing_SeasonalPriceWins(t *testing.T) {
	pkg := testPackage()
	seasonal := dec("12000.00")
	pkg.SeasonalPrice = &seasonal

	flags := pricing.ValidatePricing(pkg, 2, dec("24000.00"), dec("0"))

	assert.False(t, flags.PriceMismatch)
}

func TestValidatePricing_ExcessDiscount(t *testing.T) {
	pkg := testPackage()

	flags := pricing.ValidatePricing(pkg, 1, dec("10000.00"), dec("25"))

	assert.True(t, flags.ExcessDiscount)
	require.Len(t, flags.Reasons, 1)
	assert.Contains(t, flags.Reasons[0], "excess discount")
}
