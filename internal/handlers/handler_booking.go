package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
)

// bookingHandler handles HTTP requests for the booking lifecycle.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/pending-validation", h.listPendingValidations)
		bookings.GET("/:id", h.getBooking)
		bookings.POST("/:id/approve", h.approveBooking)
		bookings.POST("/:id/reject", h.rejectBooking)
		bookings.POST("/:id/cancel", h.cancelBooking)
	}
}

func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	booking, warnings, err := h.bookingService.CreateBooking(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Booking created via API",
		slog.String("booking_number", booking.BookingNumber),
		slog.Int("warnings", len(warnings)),
	)
	c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Booking:  dto.ToBookingResponse(booking),
		Warnings: warnings,
	})
}

func (h *bookingHandler) getBooking(c *gin.Context) {
	requestingUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), c.Param("id"), requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *bookingHandler) listBookings(c *gin.Context) {
	requestingUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	params := dto.ListBookingsParams{
		FlaggedOnly: c.Query("flagged") == "true",
		NextToken:   queryToken(c),
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.BookingStatus(statusStr)
		params.Status = &status
	}

	bookings, newToken, err := h.bookingService.ListBookings(c.Request.Context(), params, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListBookingsResponse{Bookings: dto.ToBookingResponses(bookings), NextToken: newToken})
}

// listPendingValidations is the manager review queue.
func (h *bookingHandler) listPendingValidations(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	flaggedOnly := c.Query("flagged") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookings, newToken, err := h.bookingService.ListPendingValidations(c.Request.Context(), actorUserID, flaggedOnly, limit, queryToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListBookingsResponse{Bookings: dto.ToBookingResponses(bookings), NextToken: newToken})
}

func (h *bookingHandler) bindValidationNotes(c *gin.Context) (string, bool) {
	var req dto.ValidateBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return "", false
		}
	}
	return req.Notes, true
}

func (h *bookingHandler) approveBooking(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	notes, ok := h.bindValidationNotes(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.ApproveBooking(c.Request.Context(), c.Param("id"), actorUserID, notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *bookingHandler) rejectBooking(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	notes, ok := h.bindValidationNotes(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.RejectBooking(c.Request.Context(), c.Param("id"), actorUserID, notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *bookingHandler) cancelBooking(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	notes, ok := h.bindValidationNotes(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("id"), actorUserID, notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
