package services

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// UserSvcFacade manages back-office users. Mutations are admin-only;
// GetUserByID is also the actor lookup used by the other services'
// authorization checks.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actorUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, actorUserID string) error
	ListUsers(ctx context.Context, actorUserID string, limit int, nextToken *string) ([]domain.User, *string, error)

	// AuthenticateUser verifies credentials for login.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}
