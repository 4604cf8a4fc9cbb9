package querycache

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// FetchFunc loads the value from the backend. Exactly the RPC call,
// nothing else; caching concerns stay here.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Fetch returns the cached value for key when fresh, otherwise runs fn and
// installs the result. Identical concurrent fetches for one key collapse
// into a single backend call; independent keys are not ordered relative to
// each other. Transient failures retry within the policy's bounds.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn FetchFunc[T]) (T, error) {
	pol := PolicyFor(key)

	if payload, _, stale, ok := c.lookup(ctx, key, pol); ok && !stale {
		var v T
		if err := msgpack.Unmarshal(payload, &v); err == nil {
			return v, nil
		}
		// Undecodable cached value: drop and fall through to a real fetch.
		_ = c.provider.Del(ctx, key.String())
	}

	res, err, _ := c.group.Do(key.String(), func() (any, error) {
		obs := c.gens.Snapshot(key)

		v, err := fetchWithRetry(ctx, pol, fn)
		if err != nil {
			return nil, err
		}

		payload, err := msgpack.Marshal(v)
		if err != nil {
			return nil, err
		}
		// CAS install: skipped when an invalidation or optimistic update
		// superseded this fetch while it was in flight.
		c.install(ctx, key, payload, obs, time.Now())
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// transientErr matches the rpc package's transient marker without
// importing it; the cache layer depends only on the error contract.
type transientErr interface{ Transient() bool }

func isTransient(err error) bool {
	var t transientErr
	return errors.As(err, &t) && t.Transient()
}

func fetchWithRetry[T any](ctx context.Context, pol Policy, fn FetchFunc[T]) (T, error) {
	var out T
	if !pol.RetryTransient || pol.MaxRetries == 0 {
		return fn(ctx)
	}

	bo := backoff.NewExponentialBackOff()
	if pol.RetryInterval > 0 {
		bo.InitialInterval = pol.RetryInterval
	}

	op := func() error {
		v, err := fn(ctx)
		if err != nil {
			if isTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		out = v
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, pol.MaxRetries), ctx))
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
