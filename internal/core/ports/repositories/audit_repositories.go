package repositories

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// AuditRepositoryFacade is the append-only persistence contract for the audit
// trail. There is deliberately no update or delete operation.
type AuditRepositoryFacade interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogsByEntity returns entries for a (model_name, object_id)
	// pair, newest first.
	ListAuditLogsByEntity(ctx context.Context, modelName, objectID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error)

	// ListAuditLogsByUser returns entries recorded for an actor, newest first.
	ListAuditLogsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error)
}
