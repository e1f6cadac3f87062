package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

func TestDerivePaymentStatus(t *testing.T) {
	total := decimal.NewFromInt(21240)

	tests := []struct {
		name       string
		amountPaid decimal.Decimal
		want       domain.PaymentStatus
	}{
		{"zero is pending", decimal.Zero, domain.PaymentPending},
		{"partial payment", decimal.NewFromInt(10000), domain.PaymentPartial},
		{"exact total is paid", total, domain.PaymentPaid},
		{"above total is paid", decimal.NewFromInt(25000), domain.PaymentPaid},
		{"one paisa short is partial", total.Sub(decimal.NewFromFloat(0.01)), domain.PaymentPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DerivePaymentStatus(tt.amountPaid, total))
		})
	}
}

func TestPaymentBalance(t *testing.T) {
	p := domain.Payment{
		AmountPaid:  decimal.NewFromInt(10000),
		TotalAmount: decimal.NewFromInt(21240),
	}
	assert.True(t, p.Balance().Equal(decimal.NewFromInt(11240)))
}
