// Package provider defines the byte store the query cache sits on.
//
// Implementations must be byte-for-byte transparent: Get returns exactly
// the []byte previously passed to Set for that key, with no prepended
// metadata and no re-encoding. The cache validates a wire envelope on read
// and deletes anything that does not parse, so foreign writes under cache
// keys are treated as corruption.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent
// use. Eviction and garbage collection are the store's own business.
type Provider interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// IO errors come back as (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL (<= 0 means no expiry). May
	// ignore cost if unsupported. Returns ok=false when the store rejected
	// the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort, idempotent).
	Del(ctx context.Context, key string) error

	// Clear drops every entry. Used on logout.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close(ctx context.Context) error
}
