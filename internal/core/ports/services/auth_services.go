package services

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// AuthSvcFacade issues access tokens for authenticated users.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
