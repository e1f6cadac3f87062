package services

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// PackageSvcFacade manages the tour catalog. Mutations are admin-only.
type PackageSvcFacade interface {
	CreatePackage(ctx context.Context, req dto.CreatePackageRequest, creatorUserID string) (*domain.TourPackage, error)
	GetPackageByID(ctx context.Context, packageID string) (*domain.TourPackage, error)
	UpdatePackage(ctx context.Context, packageID string, req dto.UpdatePackageRequest, actorUserID string) (*domain.TourPackage, error)

	// DeletePackage removes a package; fails with a conflict while bookings
	// still reference it.
	DeletePackage(ctx context.Context, packageID string, actorUserID string) error

	ListPackages(ctx context.Context, activeOnly bool, limit int, nextToken *string) ([]domain.TourPackage, *string, error)
}
