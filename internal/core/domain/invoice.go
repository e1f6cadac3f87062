package domain

import "time"

// Invoice is a one-to-one billing document for a booking. The rendered PDF is
// produced from the booking's stored pricing snapshot, never from live
// package prices.
type Invoice struct {
	InvoiceID     string     `json:"invoiceID"` // Primary Key (e.g., UUID)
	InvoiceNumber string     `json:"invoiceNumber"`
	BookingID     string     `json:"bookingID"`
	InvoiceDate   time.Time  `json:"invoiceDate"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	AuditFields
}
