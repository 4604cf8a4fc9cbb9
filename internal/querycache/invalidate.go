package querycache

import "context"

// Mutation names every write operation that can dirty cached queries.
type Mutation string

const (
	MutCreateWorkout        Mutation = "create_workout"
	MutUpdateWorkout        Mutation = "update_workout"
	MutDeleteWorkout        Mutation = "delete_workout"
	MutAddWorkoutGroup      Mutation = "add_workout_group"
	MutReorderWorkoutGroups Mutation = "reorder_workout_groups"
	MutAddWorkoutItem       Mutation = "add_workout_item"
	MutStartSession         Mutation = "start_session"
	MutLogSet               Mutation = "log_set"
	MutFinishSession        Mutation = "finish_session"
)

// Scope carries the ids a mutation touched. Optional ids stay empty when
// they do not apply (an ad hoc session has no workout, a session outside a
// cycle has no cycle) and the scoped prefixes are then skipped entirely.
type Scope struct {
	WorkoutID string
	SessionID string
	CycleID   string
}

// KeysFor is the invalidation map: the fixed set of key prefixes each
// mutation dirties. Pure and statically determinable per (mutation, scope).
func KeysFor(m Mutation, s Scope) []Key {
	switch m {
	case MutCreateWorkout:
		return []Key{Workouts.List()}
	case MutUpdateWorkout:
		return []Key{Workouts.Detail(s.WorkoutID), Workouts.List()}
	case MutDeleteWorkout:
		// Cycles reference workouts, so a deletion can orphan any of them.
		return []Key{Workouts.List(), Workouts.Detail(s.WorkoutID), Cycles.List()}
	case MutAddWorkoutGroup, MutReorderWorkoutGroups, MutAddWorkoutItem:
		return []Key{Workouts.Detail(s.WorkoutID)}
	case MutStartSession:
		keys := []Key{Sessions.Active()}
		if s.CycleID != "" {
			keys = append(keys, Cycles.Detail(s.CycleID))
		}
		return keys
	case MutLogSet:
		return []Key{Sessions.Detail(s.SessionID)}
	case MutFinishSession:
		keys := []Key{Sessions.Detail(s.SessionID), Sessions.Active()}
		if s.WorkoutID != "" {
			keys = append(keys, Workouts.History(s.WorkoutID))
		}
		if s.CycleID != "" {
			keys = append(keys, Cycles.Detail(s.CycleID))
		}
		keys = append(keys, Exercises.Histories())
		return keys
	}
	return nil
}

// AfterMutation marks every prefix the mutation dirties as stale. Called
// once per successful mutation, and at the end of every optimistic update
// regardless of outcome.
func (c *Cache) AfterMutation(ctx context.Context, m Mutation, s Scope) {
	c.Invalidate(ctx, KeysFor(m, s)...)
}
