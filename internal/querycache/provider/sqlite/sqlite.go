// Package sqlite provides a disk-persistent store so cached queries
// survive process restarts, the way the original app's cache outlives a
// page load. Backed by a local libsql database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type Provider struct {
	db *sql.DB
}

func New(path string) (*Provider, error) {
	db, err := sql.Open("libsql", "file:"+path+"?cache=shared&mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("opening cache db %s: %w", path, err)
	}

	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS query_cache (
            key TEXT PRIMARY KEY,
            value BLOB NOT NULL,
            expires_at TEXT
        );
    `)
	if err != nil {
		return nil, fmt.Errorf("initializing cache db: %w", err)
	}

	return &Provider{db: db}, nil
}

func (p *Provider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	var expiresAt sql.NullString

	err := p.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM query_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if expiresAt.Valid {
		exp, err := time.Parse(time.RFC3339, expiresAt.String)
		if err != nil || time.Now().After(exp) {
			// Lazy expiry: drop on read.
			_, _ = p.db.ExecContext(ctx, "DELETE FROM query_cache WHERE key = ?", key)
			return nil, false, nil
		}
	}

	return value, true, nil
}

func (p *Provider) Set(ctx context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var expiresAt any
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UTC().Format(time.RFC3339)
	}
	_, err := p.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO query_cache (key, value, expires_at) VALUES (?, ?, ?)",
		key, value, expiresAt,
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Provider) Del(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx, "DELETE FROM query_cache WHERE key = ?", key)
	return err
}

func (p *Provider) Clear(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, "DELETE FROM query_cache")
	return err
}

func (p *Provider) Close(_ context.Context) error {
	return p.db.Close()
}
