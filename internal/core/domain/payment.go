package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates how much of a booking's total has been paid.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentMethod enumerates accepted payment methods.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodUPI          PaymentMethod = "upi"
	MethodCheque       PaymentMethod = "cheque"
	MethodOther        PaymentMethod = "other"
)

// Payment tracks the amount paid against a single booking (one-to-one).
// TotalAmount is copied from the booking at creation.
type Payment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (e.g., UUID)
	BookingID     string          `json:"bookingID"`
	Status        PaymentStatus   `json:"paymentStatus"`
	Method        PaymentMethod   `json:"paymentMethod"`
	TransactionID string          `json:"transactionID"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
	Notes         string          `json:"notes"`
	AuditFields
}

// Balance returns the remaining amount owed on the booking.
func (p *Payment) Balance() decimal.Decimal {
	return p.TotalAmount.Sub(p.AmountPaid)
}

// DerivePaymentStatus computes the payment status as a pure function of the
// amount paid against the total.
func DerivePaymentStatus(amountPaid, totalAmount decimal.Decimal) PaymentStatus {
	switch {
	case amountPaid.GreaterThanOrEqual(totalAmount):
		return PaymentPaid
	case amountPaid.GreaterThan(decimal.Zero):
		return PaymentPartial
	default:
		return PaymentPending
	}
}
