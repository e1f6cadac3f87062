package dto

import (
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// AuditLogResponse is the API representation of an audit trail entry.
type AuditLogResponse struct {
	AuditID   string             `json:"auditID"`
	ModelName string             `json:"modelName"`
	ObjectID  string             `json:"objectID"`
	Action    domain.AuditAction `json:"action"`
	UserID    *string            `json:"userID,omitempty"`
	Changes   map[string]any     `json:"changes,omitempty"`
	IPAddress *string            `json:"ipAddress,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Notes     string             `json:"notes,omitempty"`
}

// ListAuditLogsResponse is a paginated audit trail listing, newest first.
type ListAuditLogsResponse struct {
	Entries   []AuditLogResponse `json:"entries"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToAuditLogResponse maps a domain audit entry to its API representation.
func ToAuditLogResponse(e *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditID:   e.AuditID,
		ModelName: e.ModelName,
		ObjectID:  e.ObjectID,
		Action:    e.Action,
		UserID:    e.UserID,
		Changes:   e.Changes,
		IPAddress: e.IPAddress,
		Timestamp: e.Timestamp,
		Notes:     e.Notes,
	}
}

// ToAuditLogResponses maps a slice of domain audit entries.
func ToAuditLogResponses(entries []domain.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, len(entries))
	for i := range entries {
		out[i] = ToAuditLogResponse(&entries[i])
	}
	return out
}
