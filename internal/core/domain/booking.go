package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus indicates the validation state of a booking.
// pending is the initial state; approved, rejected and cancelled are terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a sales entry for a tour package. The pricing fields are a
// snapshot computed once at creation and never recomputed from the live
// package price.
type Booking struct {
	BookingID     string `json:"bookingID"` // Primary Key (e.g., UUID)
	BookingNumber string `json:"bookingNumber"`
	PackageID     string `json:"packageID"`

	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`

	TravelDate        time.Time `json:"travelDate"`
	NumberOfTravelers int       `json:"numberOfTravelers"`

	// Pricing snapshot
	PackagePrice       decimal.Decimal `json:"packagePrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	CommissionAmount   decimal.Decimal `json:"commissionAmount"`

	// Review flags set at creation; advisory only, never block the booking.
	PriceMismatchFlag    bool `json:"priceMismatchFlag"`
	ExcessDiscountFlag   bool `json:"excessDiscountFlag"`
	DuplicateBookingFlag bool `json:"duplicateBookingFlag"`

	Status          BookingStatus `json:"status"`
	ValidationNotes string        `json:"validationNotes"`
	ValidatedBy     *string       `json:"validatedBy,omitempty"`
	ValidatedAt     *time.Time    `json:"validatedAt,omitempty"`

	AuditFields
}

// IsFlagged reports whether any review flag is set.
func (b *Booking) IsFlagged() bool {
	return b.PriceMismatchFlag || b.ExcessDiscountFlag || b.DuplicateBookingFlag
}
