package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DefaultHistoryLimit is how many past versions are kept per key.
const DefaultHistoryLimit = 20

var ErrNoHistory = errors.New("no earlier version to restore")

// KVRepo is a key-value store over the kv and kv_history tables.
type KVRepo struct {
	db    *sql.DB
	limit int
	now   func() time.Time
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db, limit: DefaultHistoryLimit, now: time.Now}
}

// WithHistoryLimit sets how many versions Set retains per key.
func (r *KVRepo) WithHistoryLimit(n int) *KVRepo {
	if n > 0 {
		r.limit = n
	}
	return r
}

// Get returns nil, nil when key has never been written.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return value, nil
}

func (r *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	at := r.now().UnixNano()
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := upsert(ctx, tx, key, value, at); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kv_history (key, value, saved_at) VALUES (?, ?, ?)`, key, value, at); err != nil {
			return fmt.Errorf("kv history insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM kv_history
			WHERE key = ? AND id NOT IN (
				SELECT id FROM kv_history WHERE key = ? ORDER BY id DESC LIMIT ?
			)
		`, key, key, r.limit); err != nil {
			return fmt.Errorf("kv history prune: %w", err)
		}
		return nil
	})
}

func upsert(ctx context.Context, tx *sql.Tx, key string, value []byte, at int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, at)
	if err != nil {
		return fmt.Errorf("kv upsert: %w", err)
	}
	return nil
}

// History lists stored versions of key, newest first. The first entry is the
// current value.
func (r *KVRepo) History(ctx context.Context, key string) ([]Version, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, key, length(value), saved_at FROM kv_history
		WHERE key = ? ORDER BY id DESC
	`, key)
	if err != nil {
		return nil, fmt.Errorf("kv history: %w", err)
	}
	defer rows.Close()

	var out []Version
	for rows.Next() {
		var v Version
		var at int64
		if err := rows.Scan(&v.ID, &v.Key, &v.Size, &at); err != nil {
			return nil, fmt.Errorf("kv history scan: %w", err)
		}
		v.SavedAt = time.Unix(0, at).UTC()
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv history rows: %w", err)
	}
	return out, nil
}

// Rollback discards the newest version of key and makes the one before it
// current again. It returns the restored value.
func (r *KVRepo) Rollback(ctx context.Context, key string) ([]byte, error) {
	var restored []byte
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT id, value FROM kv_history WHERE key = ? ORDER BY id DESC LIMIT 2`, key)
		if err != nil {
			return fmt.Errorf("kv rollback query: %w", err)
		}
		var ids []int64
		var values [][]byte
		for rows.Next() {
			var id int64
			var value []byte
			if err := rows.Scan(&id, &value); err != nil {
				_ = rows.Close()
				return fmt.Errorf("kv rollback scan: %w", err)
			}
			ids = append(ids, id)
			values = append(values, value)
		}
		if err := rows.Close(); err != nil {
			return fmt.Errorf("kv rollback rows: %w", err)
		}
		if len(ids) < 2 {
			return ErrNoHistory
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM kv_history WHERE id = ?`, ids[0]); err != nil {
			return fmt.Errorf("kv rollback delete: %w", err)
		}
		if err := upsert(ctx, tx, key, values[1], r.now().UnixNano()); err != nil {
			return err
		}
		restored = values[1]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restored, nil
}
