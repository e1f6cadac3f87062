package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
)

// reportingHandler exposes the analytics dashboard and reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.dashboard)
		reports.GET("/sales", h.salesReport)
		reports.GET("/financial", h.financialReport)
	}
}

// reportWindow parses the from/to query params, defaulting to the last 30
// days. The to bound is pushed to end of day so same-day reports include the
// current day's rows.
func reportWindow(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", fromStr, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.ErrValidation
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", toStr, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.ErrValidation
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func (h *reportingHandler) dashboard(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.reportingService.Dashboard(c.Request.Context(), actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *reportingHandler) salesReport(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	from, to, err := reportWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report window, dates must be YYYY-MM-DD"})
		return
	}

	resp, err := h.reportingService.SalesReport(c.Request.Context(), actorUserID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *reportingHandler) financialReport(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	from, to, err := reportWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report window, dates must be YYYY-MM-DD"})
		return
	}

	resp, err := h.reportingService.FinancialReport(c.Request.Context(), actorUserID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
