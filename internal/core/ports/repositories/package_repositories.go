package repositories

import (
	"context"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// PackageRepositoryFacade is the persistence contract for the tour catalog.
type PackageRepositoryFacade interface {
	SavePackage(ctx context.Context, pkg domain.TourPackage) error
	FindPackageByID(ctx context.Context, packageID string) (*domain.TourPackage, error)
	UpdatePackage(ctx context.Context, pkg domain.TourPackage) error

	// DeletePackage removes a package. Returns apperrors.ErrConflict when
	// bookings still reference it (FK RESTRICT).
	DeletePackage(ctx context.Context, packageID string) error

	ListPackages(ctx context.Context, activeOnly bool, limit int, nextToken *string) ([]domain.TourPackage, *string, error)
}
