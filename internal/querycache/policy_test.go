package querycache

import (
	"testing"
	"time"
)

// TestPolicyByVolatility checks the shape of the table: an in-progress
// session polls with a short window, history never goes stale on its own,
// and plan data sits in between.
func TestPolicyByVolatility(t *testing.T) {
	active := PolicyFor(Sessions.Active())
	if active.PollEvery == 0 {
		t.Error("active session policy does not poll")
	}
	if active.StaleAfter >= time.Minute {
		t.Errorf("active session staleness too long: %v", active.StaleAfter)
	}

	history := PolicyFor(Workouts.History("wk-1"))
	if history.StaleAfter != Immutable {
		t.Errorf("workout history staleness = %v, want Immutable", history.StaleAfter)
	}
	if PolicyFor(Exercises.History("ex-1")).StaleAfter != Immutable {
		t.Error("exercise history not treated immutable")
	}

	list := PolicyFor(Workouts.List())
	if list.StaleAfter < time.Minute || list.StaleAfter == Immutable {
		t.Errorf("workout list staleness = %v, want minutes", list.StaleAfter)
	}
	if list.PollEvery != 0 {
		t.Error("workout list should not poll")
	}
}

// TestPolicyIgnoresID verifies the lookup is by (domain, variant) only.
func TestPolicyIgnoresID(t *testing.T) {
	a := PolicyFor(Workouts.Detail("a"))
	b := PolicyFor(Workouts.Detail("b"))
	if a != b {
		t.Errorf("same variant, different policies: %+v vs %+v", a, b)
	}
}

func TestPolicyDefault(t *testing.T) {
	p := PolicyFor(Key{"unknown", "variant"})
	if p != defaultPolicy {
		t.Errorf("unknown key policy = %+v, want default", p)
	}
	if PolicyFor(Key{"unknown"}) != defaultPolicy {
		t.Error("unknown domain should fall back to default")
	}
	// A list key is its domain's collection key and carries the list
	// policy, not the default.
	if PolicyFor(Workouts.List()) == defaultPolicy {
		t.Error("list key fell through to the default policy")
	}
}
