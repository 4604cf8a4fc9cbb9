package querycache

import (
	"context"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Outcome is the terminal state of an optimistic update. There is no third
// option: the speculative value is either confirmed by the backend or
// rolled back, and both paths end in invalidation.
type Outcome int

const (
	Confirmed Outcome = iota + 1
	RolledBack
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case RolledBack:
		return "rolled-back"
	}
	return "unknown"
}

// Update runs one optimistic mutation against key, in strict order:
//
//  1. supersede any in-flight fetch for the key (forget its singleflight
//     slot and bump the generation so a late result's install is skipped)
//  2. snapshot the current cached entry verbatim
//  3. install the speculative value computed by apply
//  4. run the RPC call
//  5. on failure, restore the snapshot exactly and surface the error
//  6. either way, run the mutation's standard invalidation so the next
//     observation reconciles against server truth
//
// When nothing is cached for the key there is nothing to mutate: apply is
// not run and steps 3 and 5 are skipped, but the call and the closing
// invalidation still happen.
func Update[T any](ctx context.Context, c *Cache, key Key, m Mutation, scope Scope, apply func(T) T, call func(context.Context) error) (Outcome, error) {
	keyStr := key.String()

	// (1) Cancellation is cooperative: the in-flight fetch is not aborted,
	// its result is discarded by the generation check on install.
	c.group.Forget(keyStr)
	c.gens.Bump(key)

	// (2)
	snapshot, snapFetchedAt, _, hadEntry := c.lookup(ctx, key, PolicyFor(key))

	// (3) Skipped with no prior entry: fabricating a value from T's zero
	// would expose it as fresh. An undecodable entry counts as absent and
	// self-heals on the next read.
	if hadEntry {
		var current T
		if err := msgpack.Unmarshal(snapshot, &current); err != nil {
			hadEntry = false
		} else {
			speculative, err := msgpack.Marshal(apply(current))
			if err != nil {
				return RolledBack, err
			}
			c.install(ctx, key, speculative, c.gens.Snapshot(key), time.Now())
			c.log.Debug("speculative value installed", Fields{"key": keyStr, "mutation": string(m)})
		}
	}

	// (4)
	callErr := call(ctx)

	if callErr != nil && hadEntry {
		// (5) Another bump so the speculative entry can never outlive the
		// rollback, then the snapshot goes back byte for byte.
		c.gens.Bump(key)
		c.install(ctx, key, snapshot, c.gens.Snapshot(key), snapFetchedAt)
		c.log.Debug("optimistic update rolled back", Fields{"key": keyStr, "mutation": string(m), "err": callErr})
	}

	// (6)
	c.AfterMutation(ctx, m, scope)

	if callErr != nil {
		return RolledBack, callErr
	}
	return Confirmed, nil
}
