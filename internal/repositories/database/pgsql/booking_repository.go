package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	"github.com/lebinlenin2004/TravelSoftware/internal/utils/pagination"
)

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for booking data.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

const bookingColumns = `
	booking_id, booking_number, package_id,
	customer_name, customer_email, customer_phone, customer_address,
	travel_date, number_of_travelers,
	package_price, discount_percentage, discount_amount, subtotal, tax_amount, total_amount, commission_amount,
	price_mismatch_flag, excess_discount_flag, duplicate_booking_flag,
	status, validation_notes, validated_by, validated_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.BookingID, &b.BookingNumber, &b.PackageID,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.CustomerAddress,
		&b.TravelDate, &b.NumberOfTravelers,
		&b.PackagePrice, &b.DiscountPercentage, &b.DiscountAmount, &b.Subtotal, &b.TaxAmount, &b.TotalAmount, &b.CommissionAmount,
		&b.PriceMismatchFlag, &b.ExcessDiscountFlag, &b.DuplicateBookingFlag,
		&b.Status, &b.ValidationNotes, &b.ValidatedBy, &b.ValidatedAt,
		&b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveBookingWithAudit inserts the booking and its audit entry in one
// transaction. A booking number collision surfaces as ErrDuplicate so the
// caller can regenerate and retry.
func (r *PgxBookingRepository) SaveBookingWithAudit(ctx context.Context, booking domain.Booking, entry domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO bookings (
			booking_id, booking_number, package_id,
			customer_name, customer_email, customer_phone, customer_address,
			travel_date, number_of_travelers,
			package_price, discount_percentage, discount_amount, subtotal, tax_amount, total_amount, commission_amount,
			price_mismatch_flag, excess_discount_flag, duplicate_booking_flag,
			status, validation_notes, validated_by, validated_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27);
	`
	_, err = tx.Exec(ctx, query,
		booking.BookingID, booking.BookingNumber, booking.PackageID,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone, booking.CustomerAddress,
		booking.TravelDate, booking.NumberOfTravelers,
		booking.PackagePrice, booking.DiscountPercentage, booking.DiscountAmount, booking.Subtotal, booking.TaxAmount, booking.TotalAmount, booking.CommissionAmount,
		booking.PriceMismatchFlag, booking.ExcessDiscountFlag, booking.DuplicateBookingFlag,
		booking.Status, booking.ValidationNotes, booking.ValidatedBy, booking.ValidatedAt,
		booking.CreatedAt, booking.CreatedBy, booking.LastUpdatedAt, booking.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert booking %s: %w", booking.BookingID, err)
	}

	if err := insertAuditLogTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateBookingValidationWithAudit persists a status transition and its audit
// entry atomically.
func (r *PgxBookingRepository) UpdateBookingValidationWithAudit(ctx context.Context, booking domain.Booking, entry domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE bookings
		SET status = $2, validation_notes = $3, validated_by = $4, validated_at = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE booking_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		booking.BookingID,
		booking.Status, booking.ValidationNotes, booking.ValidatedBy, booking.ValidatedAt,
		booking.LastUpdatedAt, booking.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", booking.BookingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertAuditLogTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1;`
	booking, err := scanBooking(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by ID %s: %w", bookingID, err)
	}
	return booking, nil
}

// CountDuplicateBookings counts pending or approved bookings for the same
// customer email, package and travel date, excluding the given booking.
func (r *PgxBookingRepository) CountDuplicateBookings(ctx context.Context, customerEmail, packageID string, travelDate time.Time, excludeBookingID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE customer_email = $1 AND package_id = $2 AND travel_date = $3
		  AND status IN ('pending', 'approved')
		  AND booking_id <> $4;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, customerEmail, packageID, travelDate, excludeBookingID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count duplicate bookings: %w", err)
	}
	return count, nil
}

func (r *PgxBookingRepository) CountBookingsByPackage(ctx context.Context, packageID string) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE package_id = $1;`, packageID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings for package %s: %w", packageID, err)
	}
	return count, nil
}

// ListBookings retrieves a filtered, token-paginated page ordered by
// (created_at DESC, booking_id DESC).
func (r *PgxBookingRepository) ListBookings(ctx context.Context, filter portsrepo.ListBookingsFilter, limit int, nextToken *string) ([]domain.Booking, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		baseQuery += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		baseQuery += ` AND created_by = $` + strconv.Itoa(len(args))
	}
	if filter.FlaggedOnly {
		baseQuery += ` AND (price_mismatch_flag OR excess_discount_flag OR duplicate_booking_flag)`
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastCreatedAt, lastID)
		baseQuery += ` AND (created_at, booking_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + ` ORDER BY created_at DESC, booking_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0, limit)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate booking rows: %w", err)
	}

	var returnedNextToken *string
	if len(bookings) > limit {
		bookings = bookings[:limit]
		last := bookings[len(bookings)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.BookingID)
		returnedNextToken = &token
	}
	return bookings, returnedNextToken, nil
}
