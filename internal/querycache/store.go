package querycache

import (
	"context"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/singleflight"

	"github.com/vportela/forja/internal/querycache/provider"
)

// Entries older than this are garbage for the provider regardless of
// policy; read-side staleness is always policy-driven.
const defaultEntryTTL = 24 * time.Hour

// Cache is the process-scoped cache store. Initialized once at startup,
// cleared explicitly on logout. Only this package mutates it: values come
// in through fetch installs and optimistic updates, and go stale through
// mutation invalidation.
type Cache struct {
	provider provider.Provider
	gens     *genStore
	group    singleflight.Group
	log      Logger
	entryTTL time.Duration
}

type Option func(*Cache)

func WithLogger(l Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

func WithEntryTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.entryTTL = ttl
		}
	}
}

func New(p provider.Provider, opts ...Option) *Cache {
	c := &Cache{
		provider: p,
		gens:     newGenStore(),
		log:      NopLogger{},
		entryTTL: defaultEntryTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// lookup reads the raw entry for key. stale is true when the entry's
// generation no longer matches or its policy window has passed; the
// payload still comes back so observers can show it while refetching.
func (c *Cache) lookup(ctx context.Context, key Key, pol Policy) (payload []byte, fetchedAt time.Time, stale, ok bool) {
	raw, ok, err := c.provider.Get(ctx, key.String())
	if err != nil {
		c.log.Warn("provider get failed", Fields{"key": key.String(), "err": err})
		return nil, time.Time{}, false, false
	}
	if !ok {
		return nil, time.Time{}, false, false
	}

	gen, fetchedAt, payload, err := decodeEntry(raw)
	if err != nil {
		// self-heal corrupt
		_ = c.provider.Del(ctx, key.String())
		return nil, time.Time{}, false, false
	}

	stale = gen != c.gens.Snapshot(key)
	if !stale && pol.StaleAfter != Immutable && time.Since(fetchedAt) > pol.StaleAfter {
		stale = true
	}
	return payload, fetchedAt, stale, true
}

// install writes payload under key iff the observed generation is still
// current. A bump in between means the value was fetched against a world
// that no longer exists; the write is skipped and the caller's next
// observation refetches.
func (c *Cache) install(ctx context.Context, key Key, payload []byte, observedGen uint64, fetchedAt time.Time) {
	if c.gens.Snapshot(key) != observedGen {
		c.log.Debug("install skipped (gen moved)", Fields{"key": key.String(), "obs": observedGen})
		return
	}
	raw := encodeEntry(observedGen, fetchedAt, payload)
	ok, err := c.provider.Set(ctx, key.String(), raw, int64(len(raw)), c.entryTTL)
	if err != nil {
		c.log.Warn("provider set failed", Fields{"key": key.String(), "err": err})
		return
	}
	if !ok {
		c.log.Debug("provider rejected set (pressure)", Fields{"key": key.String()})
	}
}

// Invalidate marks every key under each given prefix stale by bumping the
// prefix's generation. Entries are not deleted and no refetch is forced;
// the next observation of an affected key reconciles.
func (c *Cache) Invalidate(ctx context.Context, prefixes ...Key) {
	for _, p := range prefixes {
		gen := c.gens.Bump(p)
		c.log.Debug("invalidated prefix", Fields{"prefix": p.String(), "gen": gen})
	}
	_ = ctx
}

// SnapshotGen exposes the key's effective generation for CAS-style checks.
func (c *Cache) SnapshotGen(key Key) uint64 { return c.gens.Snapshot(key) }

// Clear wipes the store and all generation counters. Logout path.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.provider.Clear(ctx); err != nil {
		return err
	}
	c.gens.Reset()
	c.log.Info("cache cleared", nil)
	return nil
}

func (c *Cache) Close(ctx context.Context) error {
	return c.provider.Close(ctx)
}

// Peek decodes the cached value for key without triggering a fetch.
// Returns the value, whether it is stale, and whether it exists at all.
// Stale values are for display only; Fetch is the way to get fresh data.
func Peek[T any](ctx context.Context, c *Cache, key Key) (v T, stale, ok bool) {
	payload, _, stale, ok := c.lookup(ctx, key, PolicyFor(key))
	if !ok {
		return v, false, false
	}
	if err := msgpack.Unmarshal(payload, &v); err != nil {
		_ = c.provider.Del(ctx, key.String())
		var zero T
		return zero, false, false
	}
	return v, stale, true
}
