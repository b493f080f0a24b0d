package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ghuser/inventree/pkg/database"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/domain/repositories"
)

// AuditRepository implements repositories.AuditRepository: the read side of
// the append-only audit log. Writes go through appendAudit inside the item
// repository's mutation transactions.
type AuditRepository struct {
	db *database.Database
}

// NewAuditRepository returns an AuditRepository backed by the given pool.
func NewAuditRepository(db *database.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// History returns the audit entries for one item code, newest first, plus
// the total entry count for that code.
func (r *AuditRepository) History(ctx context.Context, code string, opts repositories.QueryOpts) ([]models.AuditEntry, int, error) {
	opts = clampOpts(opts)
	q := r.db.DB()

	rows, err := q.QueryContext(ctx,
		`SELECT id, time, actor, item_code, action, detail
		 FROM audit_log WHERE lower(item_code) = lower($1)
		 ORDER BY time DESC, id
		 LIMIT $2 OFFSET $3`,
		code, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, wrapStorage("query audit history", err)
	}
	defer rows.Close() //nolint:errcheck

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		var action string
		var detail sql.NullString
		if err := rows.Scan(&e.ID, &e.Time, &e.Actor, &e.ItemCode, &action, &detail); err != nil {
			return nil, 0, wrapStorage("scan audit entry", err)
		}
		e.Action = models.AuditAction(action)
		if detail.Valid && detail.String != "" {
			if err := json.Unmarshal([]byte(detail.String), &e.Detail); err != nil {
				return nil, 0, fmt.Errorf("decode audit detail: %w", err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapStorage("iterate audit history", err)
	}

	var total int
	if err := q.QueryRowContext(ctx,
		`SELECT count(*) FROM audit_log WHERE lower(item_code) = lower($1)`, code,
	).Scan(&total); err != nil {
		return nil, 0, wrapStorage("count audit history", err)
	}

	return entries, total, nil
}

// appendAudit inserts the given entries into the append-only log within tx.
// Audit completeness is a correctness requirement: any failure here is
// returned so the enclosing mutation transaction rolls back.
func appendAudit(ctx context.Context, tx *sql.Tx, entries ...models.AuditEntry) error {
	for _, e := range entries {
		var detail any
		if len(e.Detail) > 0 {
			raw, err := json.Marshal(e.Detail)
			if err != nil {
				return fmt.Errorf("encode audit detail: %w", err)
			}
			detail = string(raw)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO audit_log (id, time, actor, item_code, action, detail)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, e.Time, e.Actor, e.ItemCode, string(e.Action), detail,
		); err != nil {
			return wrapStorage("append audit entry", err)
		}
	}
	return nil
}
