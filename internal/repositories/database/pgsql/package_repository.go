package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	"github.com/lebinlenin2004/TravelSoftware/internal/utils/pagination"
)

type PgxPackageRepository struct {
	db *pgxpool.Pool
}

func newPgxPackageRepository(db *pgxpool.Pool) portsrepo.PackageRepositoryFacade {
	return &PgxPackageRepository{db: db}
}

var _ portsrepo.PackageRepositoryFacade = (*PgxPackageRepository)(nil)

const packageColumns = `package_id, name, description, destination, duration_days, base_price, seasonal_price, tax_percentage, commission_percentage, max_discount_percentage, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanPackage(row pgx.Row) (*domain.TourPackage, error) {
	var p domain.TourPackage
	err := row.Scan(
		&p.PackageID, &p.Name, &p.Description, &p.Destination, &p.DurationDays,
		&p.BasePrice, &p.SeasonalPrice, &p.TaxPercentage, &p.CommissionPercentage, &p.MaxDiscountPercentage,
		&p.IsActive, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPackageRepository) SavePackage(ctx context.Context, pkg domain.TourPackage) error {
	query := `
		INSERT INTO packages (package_id, name, description, destination, duration_days, base_price, seasonal_price, tax_percentage, commission_percentage, max_discount_percentage, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		pkg.PackageID, pkg.Name, pkg.Description, pkg.Destination, pkg.DurationDays,
		pkg.BasePrice, pkg.SeasonalPrice, pkg.TaxPercentage, pkg.CommissionPercentage, pkg.MaxDiscountPercentage,
		pkg.IsActive, pkg.CreatedAt, pkg.CreatedBy, pkg.LastUpdatedAt, pkg.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save package: %w", err)
	}
	return nil
}

func (r *PgxPackageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.TourPackage, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE package_id = $1;`
	pkg, err := scanPackage(r.db.QueryRow(ctx, query, packageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find package by ID %s: %w", packageID, err)
	}
	return pkg, nil
}

func (r *PgxPackageRepository) UpdatePackage(ctx context.Context, pkg domain.TourPackage) error {
	query := `
		UPDATE packages
		SET name = $2, description = $3, destination = $4, duration_days = $5,
		    base_price = $6, seasonal_price = $7, tax_percentage = $8, commission_percentage = $9, max_discount_percentage = $10,
		    is_active = $11, last_updated_at = $12, last_updated_by = $13
		WHERE package_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		pkg.PackageID, pkg.Name, pkg.Description, pkg.Destination, pkg.DurationDays,
		pkg.BasePrice, pkg.SeasonalPrice, pkg.TaxPercentage, pkg.CommissionPercentage, pkg.MaxDiscountPercentage,
		pkg.IsActive, pkg.LastUpdatedAt, pkg.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update package %s: %w", pkg.PackageID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePackage removes a package. Bookings reference packages with ON DELETE
// RESTRICT, so a referenced package surfaces as ErrConflict.
func (r *PgxPackageRepository) DeletePackage(ctx context.Context, packageID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM packages WHERE package_id = $1;`, packageID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to delete package %s: %w", packageID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPackageRepository) ListPackages(ctx context.Context, activeOnly bool, limit int, nextToken *string) ([]domain.TourPackage, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + packageColumns + ` FROM packages WHERE 1=1`
	args := []interface{}{}

	if activeOnly {
		baseQuery += ` AND is_active`
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastCreatedAt, lastID)
		baseQuery += ` AND (created_at, package_id) < ($1, $2)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + ` ORDER BY created_at DESC, package_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	packages := make([]domain.TourPackage, 0, limit)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan package row: %w", err)
		}
		packages = append(packages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate package rows: %w", err)
	}

	var returnedNextToken *string
	if len(packages) > limit {
		packages = packages[:limit]
		last := packages[len(packages)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PackageID)
		returnedNextToken = &token
	}
	return packages, returnedNextToken, nil
}
