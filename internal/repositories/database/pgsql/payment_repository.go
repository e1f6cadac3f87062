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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for the payment ledger.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, booking_id, status, payment_method, transaction_id, amount_paid, total_amount, payment_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.PaymentID, &p.BookingID, &p.Status, &p.Method, &p.TransactionID,
		&p.AmountPaid, &p.TotalAmount, &p.PaymentDate, &p.Notes,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SavePaymentWithAudit inserts the payment and its audit entry atomically.
// The unique constraint on booking_id enforces the one-payment-per-booking
// rule and surfaces as ErrDuplicate.
func (r *PgxPaymentRepository) SavePaymentWithAudit(ctx context.Context, payment domain.Payment, entry domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO payments (payment_id, booking_id, status, payment_method, transaction_id, amount_paid, total_amount, payment_date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		payment.PaymentID, payment.BookingID, payment.Status, payment.Method, payment.TransactionID,
		payment.AmountPaid, payment.TotalAmount, payment.PaymentDate, payment.Notes,
		payment.CreatedAt, payment.CreatedBy, payment.LastUpdatedAt, payment.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
	}

	if err := insertAuditLogTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdatePaymentWithAudit persists a payment adjustment and its audit entry
// atomically.
func (r *PgxPaymentRepository) UpdatePaymentWithAudit(ctx context.Context, payment domain.Payment, entry domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE payments
		SET status = $2, payment_method = $3, transaction_id = $4, amount_paid = $5, payment_date = $6, notes = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE payment_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		payment.PaymentID, payment.Status, payment.Method, payment.TransactionID,
		payment.AmountPaid, payment.PaymentDate, payment.Notes,
		payment.LastUpdatedAt, payment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", payment.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertAuditLogTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	payment, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	return payment, nil
}

func (r *PgxPaymentRepository) FindPaymentByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1;`
	payment, err := scanPayment(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment for booking %s: %w", bookingID, err)
	}
	return payment, nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, status *domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	args := []interface{}{}

	if status != nil {
		args = append(args, *status)
		baseQuery += ` AND status = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastCreatedAt, lastID)
		baseQuery += ` AND (created_at, payment_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + ` ORDER BY created_at DESC, payment_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0, limit)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate payment rows: %w", err)
	}

	var returnedNextToken *string
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[len(payments)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PaymentID)
		returnedNextToken = &token
	}
	return payments, returnedNextToken, nil
}
