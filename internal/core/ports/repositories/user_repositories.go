package repositories

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// UserRepositoryFacade is the persistence contract for back-office users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername looks up an active (non-deleted) user for login.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes a user. Audit entries keep their nullable
	// reference to the removed actor.
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string) error

	ListUsers(ctx context.Context, limit int, nextToken *string) ([]domain.User, *string, error)
}
