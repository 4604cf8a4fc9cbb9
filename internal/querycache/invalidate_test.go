package querycache

import (
	"context"
	"testing"
)

func keyStrings(keys []Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

// TestKeysFor pins the invalidation map down mutation by mutation.
func TestKeysFor(t *testing.T) {
	tests := []struct {
		name  string
		m     Mutation
		scope Scope
		want  []string
	}{
		{
			"create workout",
			MutCreateWorkout, Scope{},
			[]string{"workouts"},
		},
		{
			"update workout",
			MutUpdateWorkout, Scope{WorkoutID: "w1"},
			[]string{"workouts:detail:w1", "workouts"},
		},
		{
			"delete workout",
			MutDeleteWorkout, Scope{WorkoutID: "w1"},
			[]string{"workouts", "workouts:detail:w1", "cycles"},
		},
		{
			"add group",
			MutAddWorkoutGroup, Scope{WorkoutID: "w1"},
			[]string{"workouts:detail:w1"},
		},
		{
			"reorder groups",
			MutReorderWorkoutGroups, Scope{WorkoutID: "w1"},
			[]string{"workouts:detail:w1"},
		},
		{
			"add item",
			MutAddWorkoutItem, Scope{WorkoutID: "w1"},
			[]string{"workouts:detail:w1"},
		},
		{
			"start session without cycle",
			MutStartSession, Scope{WorkoutID: "w1", SessionID: "s1"},
			[]string{"sessions:active"},
		},
		{
			"start session in cycle",
			MutStartSession, Scope{SessionID: "s1", CycleID: "c1"},
			[]string{"sessions:active", "cycles:detail:c1"},
		},
		{
			"log set",
			MutLogSet, Scope{SessionID: "s1"},
			[]string{"sessions:detail:s1"},
		},
		{
			"finish ad hoc session",
			MutFinishSession, Scope{SessionID: "s1"},
			[]string{"sessions:detail:s1", "sessions:active", "exercises:history"},
		},
		{
			"finish full session",
			MutFinishSession, Scope{SessionID: "s1", WorkoutID: "w1", CycleID: "c1"},
			[]string{"sessions:detail:s1", "sessions:active", "workouts:history:w1", "cycles:detail:c1", "exercises:history"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keyStrings(KeysFor(tt.m, tt.scope))
			if len(got) != len(tt.want) {
				t.Fatalf("KeysFor = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("key[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestKeysForDeterministic verifies the map is fixed for a given
// (mutation, scope).
func TestKeysForDeterministic(t *testing.T) {
	s := Scope{SessionID: "s1", WorkoutID: "w1", CycleID: "c1"}
	a := keyStrings(KeysFor(MutFinishSession, s))
	b := keyStrings(KeysFor(MutFinishSession, s))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("map not deterministic: %v vs %v", a, b)
		}
	}
}

// TestAfterMutationFinishSession exercises the widest invalidation: after
// a finished session, no cached value stays fresh for the session detail,
// active session, workout history, owning cycle detail, or any exercise
// history.
func TestAfterMutationFinishSession(t *testing.T) {
	ctx := context.Background()
	c := New(newMemProvider())
	defer c.Close(ctx)

	affected := []Key{
		Sessions.Detail("s1"),
		Sessions.Active(),
		Workouts.History("w1"),
		Cycles.Detail("c1"),
		Exercises.History("ex1"),
		Exercises.History("ex2"),
	}
	untouched := []Key{
		Workouts.List(),
		Workouts.Detail("w1"),
		Exercises.List(),
		Cycles.Detail("c2"),
	}
	for _, k := range append(append([]Key{}, affected...), untouched...) {
		mustInstall(t, c, k, testValue{ID: k.String()})
	}

	c.AfterMutation(ctx, MutFinishSession, Scope{SessionID: "s1", WorkoutID: "w1", CycleID: "c1"})

	for _, k := range affected {
		if _, stale, ok := Peek[testValue](ctx, c, k); !ok || !stale {
			t.Errorf("%s still fresh after finish session (ok=%v stale=%v)", k, ok, stale)
		}
	}
	for _, k := range untouched {
		if _, stale, ok := Peek[testValue](ctx, c, k); !ok || stale {
			t.Errorf("%s wrongly invalidated (ok=%v stale=%v)", k, ok, stale)
		}
	}
}

// TestAfterMutationSkipsAbsentIDs verifies the conditional rows: no cycle
// id means no cycle invalidation at all, not a blanket one.
func TestAfterMutationSkipsAbsentIDs(t *testing.T) {
	ctx := context.Background()
	c := New(newMemProvider())
	defer c.Close(ctx)

	cycleKey := Cycles.Detail("c1")
	historyKey := Workouts.History("w1")
	mustInstall(t, c, cycleKey, testValue{ID: "c1"})
	mustInstall(t, c, historyKey, testValue{ID: "w1"})

	c.AfterMutation(ctx, MutFinishSession, Scope{SessionID: "s1"})

	if _, stale, ok := Peek[testValue](ctx, c, cycleKey); !ok || stale {
		t.Errorf("cycle detail invalidated without a cycle id (ok=%v stale=%v)", ok, stale)
	}
	if _, stale, ok := Peek[testValue](ctx, c, historyKey); !ok || stale {
		t.Errorf("workout history invalidated without a workout id (ok=%v stale=%v)", ok, stale)
	}
}
