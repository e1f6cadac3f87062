package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
)

const invoiceDateLayout = "02 Jan 2006"

// InvoiceRenderer produces invoice PDFs from the booking's pricing snapshot.
type InvoiceRenderer struct {
	companyName    string
	companyAddress string
}

var _ portssvc.InvoiceRenderer = (*InvoiceRenderer)(nil)

func NewInvoiceRenderer(companyName, companyAddress string) *InvoiceRenderer {
	return &InvoiceRenderer{
		companyName:    companyName,
		companyAddress: companyAddress,
	}
}

// RenderInvoice lays out the invoice using only amounts stored on the
// booking. The package record supplies descriptive text, never prices.
func (r *InvoiceRenderer) RenderInvoice(_ context.Context, invoice domain.Invoice, booking domain.Booking, pkg domain.TourPackage, payment *domain.Payment) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(8, r.companyName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
		}),
		text.NewCol(4, "INVOICE", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)
	if r.companyAddress != "" {
		m.AddRow(8,
			text.NewCol(12, r.companyAddress, props.Text{Size: 9}),
		)
	}

	dueDate := "-"
	if invoice.DueDate != nil {
		dueDate = invoice.DueDate.Format(invoiceDateLayout)
	}
	m.AddRow(22,
		col.New(6).Add(
			text.New("Invoice number: "+invoice.InvoiceNumber, props.Text{Size: 9}),
			text.New("Invoice date: "+invoice.InvoiceDate.Format(invoiceDateLayout), props.Text{Size: 9, Top: 5}),
			text.New("Due date: "+dueDate, props.Text{Size: 9, Top: 10}),
			text.New("Booking number: "+booking.BookingNumber, props.Text{Size: 9, Top: 15}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(booking.CustomerName, props.Text{Size: 9, Top: 5}),
			text.New(booking.CustomerEmail, props.Text{Size: 9, Top: 10}),
			text.New(booking.CustomerPhone, props.Text{Size: 9, Top: 15}),
		),
	)
	if booking.CustomerAddress != "" {
		m.AddRow(8,
			col.New(6),
			text.NewCol(6, booking.CustomerAddress, props.Text{Size: 9}),
		)
	}

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(2, "Travelers", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))

	description := fmt.Sprintf("%s (%s, %d days), travel date %s",
		pkg.Name, pkg.Destination, pkg.DurationDays,
		booking.TravelDate.Format(invoiceDateLayout))
	m.AddRow(12,
		text.NewCol(6, description, props.Text{Size: 9}),
		text.NewCol(2, fmt.Sprintf("%d", booking.NumberOfTravelers), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, booking.PackagePrice.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, booking.PackagePrice.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
	)

	m.AddRow(2, line.NewCol(12))

	addTotalRow := func(label, amount string, bold bool) {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(8),
			text.NewCol(2, label, props.Text{Size: 9, Style: style}),
			text.NewCol(2, amount, props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	if booking.DiscountAmount.IsPositive() {
		discountLabel := fmt.Sprintf("Discount (%s%%)", booking.DiscountPercentage.StringFixed(2))
		addTotalRow(discountLabel, "-"+booking.DiscountAmount.StringFixed(2), false)
	}
	addTotalRow("Subtotal", booking.Subtotal.StringFixed(2), false)
	addTotalRow("Tax", booking.TaxAmount.StringFixed(2), false)
	addTotalRow("Total", booking.TotalAmount.StringFixed(2), true)

	if payment != nil {
		addTotalRow("Amount paid", payment.AmountPaid.StringFixed(2), false)
		addTotalRow("Balance due", payment.Balance().StringFixed(2), true)
	} else {
		addTotalRow("Balance due", booking.TotalAmount.StringFixed(2), true)
	}

	m.AddRow(12,
		text.NewCol(12, "Thank you for booking with "+r.companyName+".", props.Text{
			Size: 9,
			Top:  4,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
