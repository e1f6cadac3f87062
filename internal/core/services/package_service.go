package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
)

var ErrPackageHasBookings = errors.New("package has bookings and cannot be deleted")

var hundred = decimal.NewFromInt(100)

type packageService struct {
	packageRepo portsrepo.PackageRepositoryFacade
	bookingRepo portsrepo.BookingRepositoryFacade
	userSvc     portssvc.UserSvcFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewPackageService creates a new PackageService.
func NewPackageService(packageRepo portsrepo.PackageRepositoryFacade, bookingRepo portsrepo.BookingRepositoryFacade, userSvc portssvc.UserSvcFacade, auditSvc portssvc.AuditSvcFacade) portssvc.PackageSvcFacade {
	return &packageService{
		packageRepo: packageRepo,
		bookingRepo: bookingRepo,
		userSvc:     userSvc,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.PackageSvcFacade = (*packageService)(nil)

func (s *packageService) requireAdmin(ctx context.Context, actorUserID string) error {
	actor, err := s.userSvc.GetUserByID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to load acting user: %w", err)
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: catalog management requires the admin role", apperrors.ErrForbidden)
	}
	return nil
}

// validatePercentage checks a 0..100 percentage field.
func validatePercentage(name string, pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return fmt.Errorf("%w: %s must be between 0 and 100", apperrors.ErrValidation, name)
	}
	return nil
}

func validatePackagePricing(basePrice decimal.Decimal, seasonalPrice *decimal.Decimal, tax, commission, maxDiscount decimal.Decimal) error {
	if !basePrice.IsPositive() {
		return fmt.Errorf("%w: base price must be positive", apperrors.ErrValidation)
	}
	if seasonalPrice != nil && !seasonalPrice.IsPositive() {
		return fmt.Errorf("%w: seasonal price must be positive when set", apperrors.ErrValidation)
	}
	if err := validatePercentage("tax percentage", tax); err != nil {
		return err
	}
	if err := validatePercentage("commission percentage", commission); err != nil {
		return err
	}
	return validatePercentage("max discount percentage", maxDiscount)
}

// CreatePackage implements portssvc.PackageSvcFacade. Admin-only.
func (s *packageService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest, creatorUserID string) (*domain.TourPackage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.requireAdmin(ctx, creatorUserID); err != nil {
		return nil, err
	}
	if err := validatePackagePricing(req.BasePrice, req.SeasonalPrice, req.TaxPercentage, req.CommissionPercentage, req.MaxDiscountPercentage); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pkg := domain.TourPackage{
		PackageID:             uuid.NewString(),
		Name:                  strings.TrimSpace(req.Name),
		Description:           req.Description,
		Destination:           strings.TrimSpace(req.Destination),
		DurationDays:          req.DurationDays,
		BasePrice:             req.BasePrice,
		SeasonalPrice:         req.SeasonalPrice,
		TaxPercentage:         req.TaxPercentage,
		CommissionPercentage:  req.CommissionPercentage,
		MaxDiscountPercentage: req.MaxDiscountPercentage,
		IsActive:              true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.packageRepo.SavePackage(ctx, pkg); err != nil {
		logger.Error("Failed to save package", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save package: %w", err)
	}

	s.recordAudit(ctx, pkg.PackageID, domain.AuditCreate, creatorUserID, map[string]any{
		"name":        pkg.Name,
		"destination": pkg.Destination,
		"base_price":  pkg.BasePrice.String(),
	})

	logger.Info("Package created", slog.String("package_id", pkg.PackageID), slog.String("name", pkg.Name))
	return &pkg, nil
}

// GetPackageByID implements portssvc.PackageSvcFacade. Readable by any
// authenticated user.
func (s *packageService) GetPackageByID(ctx context.Context, packageID string) (*domain.TourPackage, error) {
	return s.packageRepo.FindPackageByID(ctx, packageID)
}

// UpdatePackage implements portssvc.PackageSvcFacade. Admin-only. Existing
// bookings keep their pricing snapshot; edits only affect future bookings.
func (s *packageService) UpdatePackage(ctx context.Context, packageID string, req dto.UpdatePackageRequest, actorUserID string) (*domain.TourPackage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.requireAdmin(ctx, actorUserID); err != nil {
		return nil, err
	}

	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Name != nil {
		pkg.Name = strings.TrimSpace(*req.Name)
		changes["name"] = pkg.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
		changes["description"] = pkg.Description
	}
	if req.Destination != nil {
		pkg.Destination = strings.TrimSpace(*req.Destination)
		changes["destination"] = pkg.Destination
	}
	if req.DurationDays != nil {
		if *req.DurationDays < 1 {
			return nil, fmt.Errorf("%w: duration must be at least 1 day", apperrors.ErrValidation)
		}
		pkg.DurationDays = *req.DurationDays
		changes["duration_days"] = pkg.DurationDays
	}
	if req.BasePrice != nil {
		pkg.BasePrice = *req.BasePrice
		changes["base_price"] = pkg.BasePrice.String()
	}
	if req.SeasonalPrice != nil {
		pkg.SeasonalPrice = req.SeasonalPrice
		changes["seasonal_price"] = req.SeasonalPrice.String()
	}
	if req.TaxPercentage != nil {
		pkg.TaxPercentage = *req.TaxPercentage
		changes["tax_percentage"] = pkg.TaxPercentage.String()
	}
	if req.CommissionPercentage != nil {
		pkg.CommissionPercentage = *req.CommissionPercentage
		changes["commission_percentage"] = pkg.CommissionPercentage.String()
	}
	if req.MaxDiscountPercentage != nil {
		pkg.MaxDiscountPercentage = *req.MaxDiscountPercentage
		changes["max_discount_percentage"] = pkg.MaxDiscountPercentage.String()
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
		changes["is_active"] = pkg.IsActive
	}
	if len(changes) == 0 {
		return pkg, nil
	}

	if err := validatePackagePricing(pkg.BasePrice, pkg.SeasonalPrice, pkg.TaxPercentage, pkg.CommissionPercentage, pkg.MaxDiscountPercentage); err != nil {
		return nil, err
	}

	pkg.LastUpdatedAt = time.Now().UTC()
	pkg.LastUpdatedBy = actorUserID

	if err := s.packageRepo.UpdatePackage(ctx, *pkg); err != nil {
		logger.Error("Failed to update package", slog.String("error", err.Error()), slog.String("package_id", packageID))
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	s.recordAudit(ctx, pkg.PackageID, domain.AuditUpdate, actorUserID, changes)
	return pkg, nil
}

// DeletePackage implements portssvc.PackageSvcFacade. Packages referenced by
// any booking cannot be deleted; deactivate them instead.
func (s *packageService) DeletePackage(ctx context.Context, packageID string, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.requireAdmin(ctx, actorUserID); err != nil {
		return err
	}

	count, err := s.bookingRepo.CountBookingsByPackage(ctx, packageID)
	if err != nil {
		return fmt.Errorf("failed to count package bookings: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrPackageHasBookings)
	}

	if err := s.packageRepo.DeletePackage(ctx, packageID); err != nil {
		// The FK restriction may still fire between the count and the delete.
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrPackageHasBookings)
		}
		logger.Error("Failed to delete package", slog.String("error", err.Error()), slog.String("package_id", packageID))
		return err
	}

	s.recordAudit(ctx, packageID, domain.AuditDelete, actorUserID, nil)
	logger.Info("Package deleted", slog.String("package_id", packageID))
	return nil
}

// ListPackages implements portssvc.PackageSvcFacade.
func (s *packageService) ListPackages(ctx context.Context, activeOnly bool, limit int, nextToken *string) ([]domain.TourPackage, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.packageRepo.ListPackages(ctx, activeOnly, limit, nextToken)
}

func (s *packageService) recordAudit(ctx context.Context, objectID string, action domain.AuditAction, actorUserID string, changes map[string]any) {
	if s.auditSvc == nil {
		return
	}
	if err := s.auditSvc.Record(ctx, "TourPackage", objectID, action, &actorUserID, changes, "", middleware.GetClientIPFromCtx(ctx)); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record package audit entry", slog.String("error", err.Error()))
	}
}
