package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	"github.com/lebinlenin2004/TravelSoftware/internal/utils/pagination"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the audit trail.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// insertAuditLogTx writes an audit row inside an existing transaction. The
// booking and payment repositories use it so state change and audit entry
// commit or roll back together.
func insertAuditLogTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	changesJSON, err := json.Marshal(entry.Changes)
	if err != nil {
		return fmt.Errorf("failed to marshal audit changes: %w", err)
	}
	query := `
		INSERT INTO audit_logs (audit_id, model_name, object_id, action, user_id, changes, ip_address, occurred_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		entry.AuditID, entry.ModelName, entry.ObjectID, entry.Action,
		entry.UserID, changesJSON, entry.IPAddress, entry.Timestamp, entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry %s: %w", entry.AuditID, err)
	}
	return nil
}

// SaveAuditLog appends a standalone audit entry.
func (r *PgxAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	changesJSON, err := json.Marshal(entry.Changes)
	if err != nil {
		return fmt.Errorf("failed to marshal audit changes: %w", err)
	}
	query := `
		INSERT INTO audit_logs (audit_id, model_name, object_id, action, user_id, changes, ip_address, occurred_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.Pool.Exec(ctx, query,
		entry.AuditID, entry.ModelName, entry.ObjectID, entry.Action,
		entry.UserID, changesJSON, entry.IPAddress, entry.Timestamp, entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry %s: %w", entry.AuditID, err)
	}
	return nil
}

func (r *PgxAuditRepository) listAuditLogs(ctx context.Context, whereClause string, whereArgs []interface{}, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT audit_id, model_name, object_id, action, user_id, changes, ip_address, occurred_at, notes
		FROM audit_logs
		WHERE ` + whereClause
	args := whereArgs

	if nextToken != nil && *nextToken != "" {
		lastTimestamp, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastTimestamp, lastID)
		baseQuery += ` AND (occurred_at, audit_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + ` ORDER BY occurred_at DESC, audit_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.AuditLog, 0, limit)
	for rows.Next() {
		var entry domain.AuditLog
		var changesJSON []byte
		if err := rows.Scan(&entry.AuditID, &entry.ModelName, &entry.ObjectID, &entry.Action, &entry.UserID, &changesJSON, &entry.IPAddress, &entry.Timestamp, &entry.Notes); err != nil {
			return nil, nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		if len(changesJSON) > 0 {
			if err := json.Unmarshal(changesJSON, &entry.Changes); err != nil {
				return nil, nil, fmt.Errorf("failed to unmarshal audit changes for %s: %w", entry.AuditID, err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate audit rows: %w", err)
	}

	var returnedNextToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.Timestamp, last.AuditID)
		returnedNextToken = &token
	}
	return entries, returnedNextToken, nil
}

// ListAuditLogsByEntity returns entries for a (model_name, object_id) pair,
// newest first.
func (r *PgxAuditRepository) ListAuditLogsByEntity(ctx context.Context, modelName, objectID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	return r.listAuditLogs(ctx, `model_name = $1 AND object_id = $2`, []interface{}{modelName, objectID}, limit, nextToken)
}

// ListAuditLogsByUser returns entries recorded for an actor, newest first.
func (r *PgxAuditRepository) ListAuditLogsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	return r.listAuditLogs(ctx, `user_id = $1`, []interface{}{userID}, limit, nextToken)
}
