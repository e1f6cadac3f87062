package dto

import (
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest is the payload for creating a booking. PackagePrice is
// caller-supplied (the snapshot the sales agent quoted); the service compares
// it against the live package price and flags mismatches instead of blocking.
type CreateBookingRequest struct {
	PackageID          string          `json:"packageID" binding:"required"`
	CustomerName       string          `json:"customerName" binding:"required,min=2,max=200"`
	CustomerEmail      string          `json:"customerEmail" binding:"required,email"`
	CustomerPhone      string          `json:"customerPhone" binding:"required"`
	CustomerAddress    string          `json:"customerAddress" binding:"max=500"`
	TravelDate         string          `json:"travelDate" binding:"required"` // YYYY-MM-DD
	NumberOfTravelers  int             `json:"numberOfTravelers" binding:"required,min=1,max=50"`
	PackagePrice       decimal.Decimal `json:"packagePrice" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}

// ValidateBookingRequest carries the manager's approval/rejection notes.
// Notes are optional for approval and mandatory for rejection; the service
// enforces the latter.
type ValidateBookingRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// ListBookingsParams narrows and paginates booking listings.
type ListBookingsParams struct {
	Status      *domain.BookingStatus
	FlaggedOnly bool
	Limit       int
	NextToken   *string
}

// BookingResponse is the API representation of a booking.
type BookingResponse struct {
	BookingID     string `json:"bookingID"`
	BookingNumber string `json:"bookingNumber"`
	PackageID     string `json:"packageID"`

	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress,omitempty"`

	TravelDate        string `json:"travelDate"`
	NumberOfTravelers int    `json:"numberOfTravelers"`

	PackagePrice       decimal.Decimal `json:"packagePrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	CommissionAmount   decimal.Decimal `json:"commissionAmount"`

	PriceMismatchFlag    bool `json:"priceMismatchFlag"`
	ExcessDiscountFlag   bool `json:"excessDiscountFlag"`
	DuplicateBookingFlag bool `json:"duplicateBookingFlag"`

	Status          domain.BookingStatus `json:"status"`
	ValidationNotes string               `json:"validationNotes,omitempty"`
	ValidatedBy     *string              `json:"validatedBy,omitempty"`
	ValidatedAt     *time.Time           `json:"validatedAt,omitempty"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateBookingResponse wraps the created booking together with the soft-flag
// warnings reported back to the caller.
type CreateBookingResponse struct {
	Booking  BookingResponse `json:"booking"`
	Warnings []string        `json:"warnings,omitempty"`
}

// ListBookingsResponse is a paginated booking listing.
type ListBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToBookingResponse maps a domain booking to its API representation.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:            b.BookingID,
		BookingNumber:        b.BookingNumber,
		PackageID:            b.PackageID,
		CustomerName:         b.CustomerName,
		CustomerEmail:        b.CustomerEmail,
		CustomerPhone:        b.CustomerPhone,
		CustomerAddress:      b.CustomerAddress,
		TravelDate:           b.TravelDate.Format("2006-01-02"),
		NumberOfTravelers:    b.NumberOfTravelers,
		PackagePrice:         b.PackagePrice,
		DiscountPercentage:   b.DiscountPercentage,
		DiscountAmount:       b.DiscountAmount,
		Subtotal:             b.Subtotal,
		TaxAmount:            b.TaxAmount,
		TotalAmount:          b.TotalAmount,
		CommissionAmount:     b.CommissionAmount,
		PriceMismatchFlag:    b.PriceMismatchFlag,
		ExcessDiscountFlag:   b.ExcessDiscountFlag,
		DuplicateBookingFlag: b.DuplicateBookingFlag,
		Status:               b.Status,
		ValidationNotes:      b.ValidationNotes,
		ValidatedBy:          b.ValidatedBy,
		ValidatedAt:          b.ValidatedAt,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            b.CreatedAt,
	}
}

// ToBookingResponses maps a slice of domain bookings.
func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return out
}
