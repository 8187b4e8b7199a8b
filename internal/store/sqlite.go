package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT    NOT NULL,
	id         TEXT    NOT NULL,
	created_at INTEGER NOT NULL,
	body       TEXT    NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_order ON documents (collection, created_at, id);
`

// OpenSQLite creates or opens a SQLite database at path and applies the
// documents schema. The pool is limited to one connection so every
// transaction is serialized.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}

// SQLiteBackendConfig holds configuration for the SQLite backend
type SQLiteBackendConfig struct {
	// DB must come from OpenSQLite
	DB *sql.DB
}

type sqliteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend creates a backend storing all collections in one
// documents table
func NewSQLiteBackend(cfg *SQLiteBackendConfig) (*sqliteBackend, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &sqliteBackend{db: cfg.DB}, nil
}

func (b *sqliteBackend) open(name string) (rawStore, error) {
	return &sqliteStore{db: b.db, name: name}, nil
}

type sqliteStore struct {
	db   *sql.DB
	name string
}

func (s *sqliteStore) insert(ctx context.Context, id string, createdAt time.Time, data []byte) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, created_at, body) VALUES (?, ?, ?, ?)
		 ON CONFLICT (collection, id) DO NOTHING`,
		s.name, id, createdAt.UnixNano(), string(data))
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDuplicateID
	}

	return nil
}

func (s *sqliteStore) get(ctx context.Context, id string) ([]byte, error) {
	return s.selectBody(ctx, s.db, id)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *sqliteStore) selectBody(ctx context.Context, q querier, id string) ([]byte, error) {
	var body string
	err := q.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`, s.name, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(body), nil
}

func (s *sqliteStore) scan(ctx context.Context) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM documents WHERE collection = ? ORDER BY created_at, id`, s.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blobs [][]byte
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		blobs = append(blobs, []byte(body))
	}

	return blobs, rows.Err()
}

func (s *sqliteStore) update(ctx context.Context, id string, fn mutateFunc) (bool, error) {
	written := false
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		data, err := s.selectBody(ctx, tx, id)
		if err != nil || data == nil {
			return err
		}

		next, ok, err := fn(data)
		if err != nil || !ok {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE documents SET body = ? WHERE collection = ? AND id = ?`,
			string(next), s.name, id); err != nil {
			return err
		}
		written = true
		return nil
	})

	return written, err
}

func (s *sqliteStore) remove(ctx context.Context, id string, fn checkFunc) (bool, error) {
	removed := false
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		data, err := s.selectBody(ctx, tx, id)
		if err != nil || data == nil {
			return err
		}

		ok, err := fn(data)
		if err != nil || !ok {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM documents WHERE collection = ? AND id = ?`, s.name, id); err != nil {
			return err
		}
		removed = true
		return nil
	})

	return removed, err
}

func (s *sqliteStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("transaction failed: %w, rollback failed: %v", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
