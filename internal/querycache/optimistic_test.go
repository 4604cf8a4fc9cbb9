package querycache

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type sessionSnapshot struct {
	ID   string   `msgpack:"id"`
	Sets []string `msgpack:"sets"`
}

// TestOptimisticConfirmed verifies the speculative value is visible before
// the RPC resolves and the key ends up stale for reconciliation.
func TestOptimisticConfirmed(t *testing.T) {
	ctx := context.Background()
	c := New(newMemProvider())
	defer c.Close(ctx)

	key := Sessions.Detail("s1")
	mustInstall(t, c, key, sessionSnapshot{ID: "s1", Sets: []string{"set-1"}})

	var seenDuringCall []string
	outcome, err := Update(ctx, c, key, MutLogSet, Scope{SessionID: "s1"},
		func(s sessionSnapshot) sessionSnapshot {
			s.Sets = append(s.Sets, "set-local")
			return s
		},
		func(ctx context.Context) error {
			// The network call observes the cache mid-flight: the
			// speculative set must already be there.
			v, _, ok := Peek[sessionSnapshot](ctx, c, key)
			if !ok {
				t.Error("no cached value during RPC call")
			}
			seenDuringCall = v.Sets
			return nil
		},
	)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if outcome != Confirmed {
		t.Errorf("outcome = %v, want Confirmed", outcome)
	}
	if !reflect.DeepEqual(seenDuringCall, []string{"set-1", "set-local"}) {
		t.Errorf("speculative value during call = %v", seenDuringCall)
	}

	// Post-update the value survives as a stale hint pending refetch.
	v, stale, ok := Peek[sessionSnapshot](ctx, c, key)
	if !ok || !stale {
		t.Fatalf("after confirm: ok=%v stale=%v", ok, stale)
	}
	if len(v.Sets) != 2 {
		t.Errorf("sets after confirm = %v", v.Sets)
	}
}

// TestOptimisticRollback verifies an RPC failure restores the snapshot
// exactly and surfaces the error.
func TestOptimisticRollback(t *testing.T) {
	ctx := context.Background()
	c := New(newMemProvider())
	defer c.Close(ctx)

	key := Workouts.Detail("w1")
	original := sessionSnapshot{ID: "w1", Sets: []string{"g1", "g2", "g3"}}
	mustInstall(t, c, key, original)

	rpcErr := errors.New("rpc reorder_workout_groups: position conflict (40001)")
	outcome, err := Update(ctx, c, key, MutReorderWorkoutGroups, Scope{WorkoutID: "w1"},
		func(s sessionSnapshot) sessionSnapshot {
			s.Sets = []string{"g3", "g1", "g2"}
			return s
		},
		func(ctx context.Context) error { return rpcErr },
	)
	if !errors.Is(err, rpcErr) {
		t.Fatalf("err = %v, want the RPC error", err)
	}
	if outcome != RolledBack {
		t.Errorf("outcome = %v, want RolledBack", outcome)
	}

	v, _, ok := Peek[sessionSnapshot](ctx, c, key)
	if !ok {
		t.Fatal("value gone after rollback")
	}
	if !reflect.DeepEqual(v, original) {
		t.Errorf("rollback not exact: %+v, want %+v", v, original)
	}
}

// TestOptimisticRollbackEmptyCache verifies a failed update against an
// uncached key leaves nothing behind.
func TestOptimisticRollbackEmptyCache(t *testing.T) {
	ctx := context.Background()
	c := New(newMemProvider())
	defer c.Close(ctx)

	key := Sessions.Detail("s1")
	outcome, err := Update(ctx, c, key, MutLogSet, Scope{SessionID: "s1"},
		func(s sessionSnapshot) sessionSnapshot {
			s.ID = "s1"
			s.Sets = []string{"set-local"}
			return s
		},
		func(ctx context.Context) error { return errors.New("backend down") },
	)
	if err == nil || outcome != RolledBack {
		t.Fatalf("outcome=%v err=%v", outcome, err)
	}
	if _, _, ok := Peek[sessionSnapshot](ctx, c, key); ok {
		t.Error("speculative value survived rollback of an empty key")
	}
}

// TestOptimisticSkipsUncachedKey verifies an update against a key with no
// cached value fabricates nothing: apply never runs, nothing is installed,
// and only the backend call decides the outcome.
func TestOptimisticSkipsUncachedKey(t *testing.T) {
	ctx := context.Background()
	c := New(newMemProvider())
	defer c.Close(ctx)

	key := Sessions.Detail("s1")
	applied := false
	outcome, err := Update(ctx, c, key, MutLogSet, Scope{SessionID: "s1"},
		func(s sessionSnapshot) sessionSnapshot {
			applied = true
			return s
		},
		func(ctx context.Context) error {
			if _, _, ok := Peek[sessionSnapshot](ctx, c, key); ok {
				t.Error("fabricated value visible during RPC call")
			}
			return nil
		},
	)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if outcome != Confirmed {
		t.Errorf("outcome = %v, want Confirmed", outcome)
	}
	if applied {
		t.Error("apply ran without a cached value")
	}
	if _, _, ok := Peek[sessionSnapshot](ctx, c, key); ok {
		t.Error("value installed for an uncached key")
	}
}

// TestOptimisticSupersedesInflightFetch verifies that a fetch started
// before the optimistic update cannot overwrite the speculative state
// when its response lands late.
func TestOptimisticSupersedesInflightFetch(t *testing.T) {
	ctx := context.Background()
	c := New(newMemProvider())
	defer c.Close(ctx)

	key := Sessions.Detail("s1")

	// A fetch snapshots its generation, then the optimistic update runs
	// before the response arrives.
	obs := c.SnapshotGen(key)

	if _, err := Update(ctx, c, key, MutLogSet, Scope{SessionID: "s1"},
		func(s sessionSnapshot) sessionSnapshot {
			s.ID = "s1"
			s.Sets = []string{"set-local"}
			return s
		},
		func(ctx context.Context) error { return nil },
	); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// The stale response tries to install against its old snapshot.
	payload, err := msgpack.Marshal(sessionSnapshot{ID: "s1", Sets: []string{"server-old"}})
	if err != nil {
		t.Fatal(err)
	}
	c.install(ctx, key, payload, obs, time.Now())

	v, _, ok := Peek[sessionSnapshot](ctx, c, key)
	if !ok {
		t.Fatal("value missing")
	}
	if !reflect.DeepEqual(v.Sets, []string{"set-local"}) {
		t.Errorf("late fetch overwrote speculative state: %v", v.Sets)
	}
}
