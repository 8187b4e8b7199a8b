package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT        NOT NULL,
	id         TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	body       JSONB       NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_order ON documents (collection, created_at, id);
`

// OpenPostgres connects a pool to databaseURL and applies the documents schema
func OpenPostgres(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return pool, nil
}

// PostgresBackendConfig holds configuration for the Postgres backend
type PostgresBackendConfig struct {
	Pool *pgxpool.Pool
}

type postgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgresBackend creates a backend storing all collections in one
// jsonb documents table
func NewPostgresBackend(cfg *PostgresBackendConfig) (*postgresBackend, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("pool cannot be nil")
	}

	return &postgresBackend{pool: cfg.Pool}, nil
}

func (b *postgresBackend) open(name string) (rawStore, error) {
	return &postgresStore{pool: b.pool, name: name}, nil
}

type postgresStore struct {
	pool *pgxpool.Pool
	name string
}

func (p *postgresStore) insert(ctx context.Context, id string, createdAt time.Time, data []byte) error {
	tag, err := p.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, created_at, body) VALUES ($1, $2, $3, $4::jsonb)
		 ON CONFLICT (collection, id) DO NOTHING`,
		p.name, id, createdAt, string(data))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrDuplicateID
	}

	return nil
}

func (p *postgresStore) get(ctx context.Context, id string) ([]byte, error) {
	var body string
	err := p.pool.QueryRow(ctx,
		`SELECT body::text FROM documents WHERE collection = $1 AND id = $2`, p.name, id).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(body), nil
}

func (p *postgresStore) scan(ctx context.Context) ([][]byte, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT body::text FROM documents WHERE collection = $1 ORDER BY created_at, id`, p.name)
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

// lockBody reads a document row under FOR UPDATE inside tx
func (p *postgresStore) lockBody(ctx context.Context, tx pgx.Tx, id string) ([]byte, error) {
	var body string
	err := tx.QueryRow(ctx,
		`SELECT body::text FROM documents WHERE collection = $1 AND id = $2 FOR UPDATE`, p.name, id).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(body), nil
}

func (p *postgresStore) update(ctx context.Context, id string, fn mutateFunc) (bool, error) {
	written := false
	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		data, err := p.lockBody(ctx, tx, id)
		if err != nil || data == nil {
			return err
		}

		next, ok, err := fn(data)
		if err != nil || !ok {
			return err
		}

		if _, err := tx.Exec(ctx,
			`UPDATE documents SET body = $1::jsonb WHERE collection = $2 AND id = $3`,
			string(next), p.name, id); err != nil {
			return err
		}
		written = true
		return nil
	})

	return written, err
}

func (p *postgresStore) remove(ctx context.Context, id string, fn checkFunc) (bool, error) {
	removed := false
	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		data, err := p.lockBody(ctx, tx, id)
		if err != nil || data == nil {
			return err
		}

		ok, err := fn(data)
		if err != nil || !ok {
			return err
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM documents WHERE collection = $1 AND id = $2`, p.name, id); err != nil {
			return err
		}
		removed = true
		return nil
	})

	return removed, err
}
