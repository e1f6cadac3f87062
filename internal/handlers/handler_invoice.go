package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
)

// invoiceHandler serves generated invoice PDFs.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	rg.GET("/bookings/:id/invoice", h.getInvoice)
}

func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, pdf, err := h.invoiceService.GenerateInvoice(c.Request.Context(), c.Param("id"), actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Invoice served", slog.String("invoice_number", invoice.InvoiceNumber))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
