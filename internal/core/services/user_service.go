package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
	"github.com/lebinlenin2004/TravelSoftware/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	auditSvc portssvc.AuditSvcFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, auditSvc: auditSvc}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) requireAdmin(ctx context.Context, actorUserID string) (*domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load acting user: %w", err)
	}
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: user management requires the admin role", apperrors.ErrForbidden)
	}
	return actor, nil
}

// CreateUser implements portssvc.UserSvcFacade. Admin-only.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireAdmin(ctx, creatorUserID); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %s is already taken", apperrors.ErrDuplicate, user.Username)
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.recordAudit(ctx, user.UserID, domain.AuditCreate, creatorUserID, map[string]any{
		"username": user.Username,
		"role":     string(user.Role),
	})

	logger.Info("User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// GetUserByID implements portssvc.UserSvcFacade.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateUser implements portssvc.UserSvcFacade. Admin-only; nil request
// fields are left untouched.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireAdmin(ctx, actorUserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
		changes["name"] = user.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		changes["email"] = user.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
		changes["phone"] = user.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
		changes["role"] = string(user.Role)
	}
	if len(changes) == 0 {
		return user, nil
	}

	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = actorUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.recordAudit(ctx, user.UserID, domain.AuditUpdate, actorUserID, changes)
	return user, nil
}

// DeleteUser implements portssvc.UserSvcFacade. Soft delete keeps the row so
// audit entries retain their actor reference.
func (s *userService) DeleteUser(ctx context.Context, userID string, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireAdmin(ctx, actorUserID); err != nil {
		return err
	}
	if userID == actorUserID {
		return fmt.Errorf("%w: users cannot delete themselves", apperrors.ErrValidation)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, actorUserID); err != nil {
		logger.Error("Failed to delete user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return err
	}

	s.recordAudit(ctx, userID, domain.AuditDelete, actorUserID, nil)
	logger.Info("User soft-deleted", slog.String("user_id", userID))
	return nil
}

// ListUsers implements portssvc.UserSvcFacade. Admin-only.
func (s *userService) ListUsers(ctx context.Context, actorUserID string, limit int, nextToken *string) ([]domain.User, *string, error) {
	if _, err := s.requireAdmin(ctx, actorUserID); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	return s.userRepo.ListUsers(ctx, limit, nextToken)
}

// AuthenticateUser implements portssvc.UserSvcFacade. The same error covers
// unknown usernames and wrong passwords.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, ErrInvalidCredentials)
	}
	return user, nil
}

// recordAudit writes a best-effort audit entry for user management actions.
// User CRUD audit is not transactional with the write itself.
func (s *userService) recordAudit(ctx context.Context, objectID string, action domain.AuditAction, actorUserID string, changes map[string]any) {
	if s.auditSvc == nil {
		return
	}
	if err := s.auditSvc.Record(ctx, "User", objectID, action, &actorUserID, changes, "", middleware.GetClientIPFromCtx(ctx)); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record user audit entry", slog.String("error", err.Error()))
	}
}
