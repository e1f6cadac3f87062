package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// auditHandler exposes the read side of the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit-logs")
	{
		audit.GET("/entity/:model/:id", h.listByEntity)
		audit.GET("/user/:id", h.listByUser)
	}
}

func (h *auditHandler) listByEntity(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, newToken, err := h.auditService.ListByEntity(c.Request.Context(), actorUserID, c.Param("model"), c.Param("id"), limit, queryToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{Entries: dto.ToAuditLogResponses(entries), NextToken: newToken})
}

func (h *auditHandler) listByUser(c *gin.Context) {
	actorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, newToken, err := h.auditService.ListByUser(c.Request.Context(), actorUserID, c.Param("id"), limit, queryToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{Entries: dto.ToAuditLogResponses(entries), NextToken: newToken})
}
