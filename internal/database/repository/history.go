package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/clockface/internal/database"
)

// HistoryLimit is how many entries of one kind are kept.
const HistoryLimit = 200

// HistoryRepo handles confirmed values. Values are unique per kind; recording
// one again moves it to the front.
type HistoryRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db, now: database.Now}
}

func (r *HistoryRepo) Record(ctx context.Context, kind, value string) (Entry, error) {
	e := Entry{ID: uuid.NewString(), Kind: kind, Value: value, CreatedAt: r.now()}
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM history WHERE kind = ? AND value = ?`, kind, value); err != nil {
			return fmt.Errorf("drop previous %s entry: %w", kind, err)
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO history(id, kind, value, created_at) VALUES (?, ?, ?, ?)
		`, e.ID, e.Kind, e.Value, e.CreatedAt); err != nil {
			return fmt.Errorf("insert %s entry: %w", kind, err)
		}
		if _, err := tx.ExecContext(ctx, `
		DELETE FROM history WHERE kind = ? AND id NOT IN (
		 SELECT id FROM history WHERE kind = ? ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`, kind, kind, HistoryLimit); err != nil {
			return fmt.Errorf("prune %s history: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Recent lists the newest entries first. An empty kind lists every kind.
func (r *HistoryRepo) Recent(ctx context.Context, kind string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = HistoryLimit
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, kind, value, created_at FROM history
	WHERE ? = '' OR kind = ?
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, kind, kind, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Value, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *HistoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	return err
}

// Clear removes every entry of kind, or all entries when kind is empty, and
// returns how many went.
func (r *HistoryRepo) Clear(ctx context.Context, kind string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE ? = '' OR kind = ?`, kind, kind)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
