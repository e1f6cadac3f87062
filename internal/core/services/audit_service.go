package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
)

type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo, userRepo: userRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record implements portssvc.AuditSvcFacade. Entries reference the target by
// a weak (model name, object id) pair so they outlive the target row.
func (s *auditService) Record(ctx context.Context, modelName, objectID string, action domain.AuditAction, userID *string, changes map[string]any, notes string, ipAddress *string) error {
	entry := domain.AuditLog{
		AuditID:   uuid.NewString(),
		ModelName: modelName,
		ObjectID:  objectID,
		Action:    action,
		UserID:    userID,
		Changes:   changes,
		IPAddress: ipAddress,
		Timestamp: time.Now().UTC(),
		Notes:     notes,
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to save audit entry",
			slog.String("error", err.Error()),
			slog.String("model_name", modelName),
			slog.String("object_id", objectID),
		)
		return fmt.Errorf("failed to save audit entry: %w", err)
	}
	return nil
}

func (s *auditService) requireAuditReader(ctx context.Context, actorUserID string) error {
	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to load acting user: %w", err)
	}
	if !actor.CanViewAuditLogs() {
		return fmt.Errorf("%w: role %s cannot read the audit trail", apperrors.ErrForbidden, actor.Role)
	}
	return nil
}

// ListByEntity implements portssvc.AuditSvcFacade.
func (s *auditService) ListByEntity(ctx context.Context, actorUserID string, modelName, objectID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	if err := s.requireAuditReader(ctx, actorUserID); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	return s.auditRepo.ListAuditLogsByEntity(ctx, modelName, objectID, limit, nextToken)
}

// ListByUser implements portssvc.AuditSvcFacade.
func (s *auditService) ListByUser(ctx context.Context, actorUserID string, userID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	if err := s.requireAuditReader(ctx, actorUserID); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	return s.auditRepo.ListAuditLogsByUser(ctx, userID, limit, nextToken)
}
