package domain

import "time"

// AuditAction enumerates the state-changing actions recorded in the audit trail.
type AuditAction string

const (
	AuditCreate  AuditAction = "create"
	AuditUpdate  AuditAction = "update"
	AuditDelete  AuditAction = "delete"
	AuditApprove AuditAction = "approve"
	AuditReject  AuditAction = "reject"
	AuditCancel  AuditAction = "cancel"
)

// AuditLog is a single append-only entry in the audit trail. ModelName and
// ObjectID form a weak reference: the entity they point at may be deleted
// later without invalidating the entry. UserID is nullable so entries
// survive actor deletion.
type AuditLog struct {
	AuditID   string         `json:"auditID"` // Primary Key (e.g., UUID)
	ModelName string         `json:"modelName"`
	ObjectID  string         `json:"objectID"`
	Action    AuditAction    `json:"action"`
	UserID    *string        `json:"userID,omitempty"`
	Changes   map[string]any `json:"changes"`
	IPAddress *string        `json:"ipAddress,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Notes     string         `json:"notes"`
}
