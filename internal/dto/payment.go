package dto

import (
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records the first payment against a booking.
type CreatePaymentRequest struct {
	Method        domain.PaymentMethod `json:"paymentMethod" binding:"required,paymentmethod"`
	TransactionID string               `json:"transactionID" binding:"max=100"`
	AmountPaid    decimal.Decimal      `json:"amountPaid"`
	PaymentDate   *time.Time           `json:"paymentDate,omitempty"`
	Notes         string               `json:"notes" binding:"max=2000"`
}

// UpdatePaymentRequest adjusts the amount paid and payment details.
type UpdatePaymentRequest struct {
	Method        *domain.PaymentMethod `json:"paymentMethod,omitempty" binding:"omitempty,paymentmethod"`
	TransactionID *string               `json:"transactionID,omitempty"`
	AmountPaid    *decimal.Decimal      `json:"amountPaid,omitempty"`
	PaymentDate   *time.Time            `json:"paymentDate,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
}

// RefundPaymentRequest marks a payment as refunded with an optional reason.
type RefundPaymentRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// PaymentResponse is the API representation of a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	BookingID     string               `json:"bookingID"`
	Status        domain.PaymentStatus `json:"paymentStatus"`
	Method        domain.PaymentMethod `json:"paymentMethod"`
	TransactionID string               `json:"transactionID,omitempty"`
	AmountPaid    decimal.Decimal      `json:"amountPaid"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	Balance       decimal.Decimal      `json:"balance"`
	PaymentDate   *time.Time           `json:"paymentDate,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ListPaymentsResponse is a paginated payment listing.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse maps a domain payment to its API representation.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		BookingID:     p.BookingID,
		Status:        p.Status,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		AmountPaid:    p.AmountPaid,
		TotalAmount:   p.TotalAmount,
		Balance:       p.Balance(),
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPaymentResponses maps a slice of domain payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return out
}
