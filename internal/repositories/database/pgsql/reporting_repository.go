package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
)

// reportingRepository answers the read-side aggregation queries. Revenue is
// always summed from booking snapshot totals in status pending or approved,
// so rejected and cancelled sales never count.
type reportingRepository struct {
	db *pgxpool.Pool
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{db: db}
}

var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

func (r *reportingRepository) GetSalesSummary(ctx context.Context, from, to time.Time, createdBy *string) (*domain.SalesSummary, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE created_at >= $1 AND created_at <= $2
		  AND status IN ('pending', 'approved')
		  AND ($3::text IS NULL OR created_by = $3);
	`
	var summary domain.SalesSummary
	var revenue decimal.Decimal
	if err := r.db.QueryRow(ctx, query, from, to, createdBy).Scan(&summary.TotalBookings, &revenue); err != nil {
		return nil, fmt.Errorf("failed to query sales summary: %w", err)
	}
	summary.TotalRevenue = revenue
	return &summary, nil
}

func (r *reportingRepository) CountPendingValidations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE status = 'pending';`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending validations: %w", err)
	}
	return count, nil
}

func (r *reportingRepository) TopPackages(ctx context.Context, limit int) ([]domain.PackagePopularity, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `
		SELECT p.package_id, p.name, p.destination, COUNT(b.booking_id) AS booking_count
		FROM packages p
		JOIN bookings b ON b.package_id = p.package_id AND b.status IN ('pending', 'approved')
		GROUP BY p.package_id, p.name, p.destination
		ORDER BY booking_count DESC, p.name ASC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top packages: %w", err)
	}
	defer rows.Close()

	result := make([]domain.PackagePopularity, 0, limit)
	for rows.Next() {
		var p domain.PackagePopularity
		if err := rows.Scan(&p.PackageID, &p.PackageName, &p.Destination, &p.BookingCount); err != nil {
			return nil, fmt.Errorf("failed to scan top package row: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *reportingRepository) AgentPerformance(ctx context.Context, from, to time.Time, limit int) ([]domain.AgentPerformance, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT u.user_id, u.name, COUNT(b.booking_id), COALESCE(SUM(b.total_amount), 0)
		FROM users u
		JOIN bookings b ON b.created_by = u.user_id
		WHERE b.created_at >= $1 AND b.created_at <= $2
		  AND b.status IN ('pending', 'approved')
		GROUP BY u.user_id, u.name
		ORDER BY SUM(b.total_amount) DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query agent performance: %w", err)
	}
	defer rows.Close()

	result := make([]domain.AgentPerformance, 0, limit)
	for rows.Next() {
		var a domain.AgentPerformance
		if err := rows.Scan(&a.UserID, &a.Name, &a.TotalBookings, &a.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan agent performance row: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *reportingRepository) GetPaymentSummary(ctx context.Context, from, to time.Time) (*domain.PaymentSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount_paid), 0),
			COALESCE(SUM(total_amount - amount_paid), 0),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'partial'),
			COUNT(*) FILTER (WHERE status = 'pending')
		FROM payments
		WHERE created_at >= $1 AND created_at <= $2;
	`
	var s domain.PaymentSummary
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&s.TotalCollected, &s.TotalOutstanding, &s.PaidCount, &s.PartialCount, &s.PendingCount); err != nil {
		return nil, fmt.Errorf("failed to query payment summary: %w", err)
	}
	return &s, nil
}
