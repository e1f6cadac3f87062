package services

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// AuditSvcFacade exposes the append-only audit trail. Record never fails on a
// missing actor (the reference is nullable); listing is role-gated.
type AuditSvcFacade interface {
	Record(ctx context.Context, modelName, objectID string, action domain.AuditAction, userID *string, changes map[string]any, notes string, ipAddress *string) error

	ListByEntity(ctx context.Context, actorUserID string, modelName, objectID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error)
	ListByUser(ctx context.Context, actorUserID string, userID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error)
}
