package querycache

import "strings"

// Key is an ordered, immutable cache key. Two logical queries are the same
// query iff their keys compare equal; a detail key always extends its
// domain collection key so prefix invalidation covers it.
type Key []string

func (k Key) String() string { return strings.Join(k, ":") }

func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, seg := range prefix {
		if k[i] != seg {
			return false
		}
	}
	return true
}

// Prefixes returns every prefix of k from the domain root down to k itself.
func (k Key) Prefixes() []Key {
	out := make([]Key, len(k))
	for i := range k {
		out[i] = k[:i+1]
	}
	return out
}

// The key registry. All keys are built here; nothing else in the repo
// concatenates key strings by hand. A domain's list key IS its collection
// key, so every id-scoped key extends it and a list-key bump reaches the
// whole subtree.

type workoutKeys struct{}
type sessionKeys struct{}
type exerciseKeys struct{}
type cycleKeys struct{}

var (
	Workouts  workoutKeys
	Sessions  sessionKeys
	Exercises exerciseKeys
	Cycles    cycleKeys
)

func (workoutKeys) List() Key             { return Key{"workouts"} }
func (workoutKeys) Detail(id string) Key  { return Key{"workouts", "detail", id} }
func (workoutKeys) History(id string) Key { return Key{"workouts", "history", id} }

func (sessionKeys) All() Key             { return Key{"sessions"} }
func (sessionKeys) Active() Key          { return Key{"sessions", "active"} }
func (sessionKeys) Detail(id string) Key { return Key{"sessions", "detail", id} }

func (exerciseKeys) List() Key { return Key{"exercises"} }

// Histories covers every per-exercise history; History(id) extends it.
func (exerciseKeys) Histories() Key        { return Key{"exercises", "history"} }
func (exerciseKeys) History(id string) Key { return Key{"exercises", "history", id} }

func (cycleKeys) List() Key            { return Key{"cycles"} }
func (cycleKeys) Detail(id string) Key { return Key{"cycles", "detail", id} }
