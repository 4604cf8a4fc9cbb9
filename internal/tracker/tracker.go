// Package tracker is the application layer: one method per operation,
// queries going through the cache and mutations driving invalidation.
// UI code never touches the cache or the RPC client directly.
package tracker

import (
	"context"

	"go.uber.org/zap"

	"github.com/vportela/forja/internal/models"
	"github.com/vportela/forja/internal/querycache"
	"github.com/vportela/forja/internal/rpc"
)

type Tracker struct {
	rpc   *rpc.Client
	cache *querycache.Cache
	log   *zap.Logger
}

func New(client *rpc.Client, cache *querycache.Cache, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{rpc: client, cache: cache, log: log}
}

// Logout clears the process cache store; nothing of the previous account
// survives in memory or on disk.
func (t *Tracker) Logout(ctx context.Context) error {
	return t.cache.Clear(ctx)
}

func (t *Tracker) Close(ctx context.Context) error {
	return t.cache.Close(ctx)
}

//
// Queries
//

func (t *Tracker) Workouts(ctx context.Context) ([]models.Workout, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Workouts.List(),
		func(ctx context.Context) ([]models.Workout, error) {
			return t.rpc.ListWorkouts(ctx)
		})
}

func (t *Tracker) Workout(ctx context.Context, id string) (*models.Workout, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Workouts.Detail(id),
		func(ctx context.Context) (*models.Workout, error) {
			return t.rpc.GetWorkout(ctx, rpc.GetWorkoutParams{WorkoutID: id})
		})
}

func (t *Tracker) WorkoutHistory(ctx context.Context, id string) ([]models.SessionSummary, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Workouts.History(id),
		func(ctx context.Context) ([]models.SessionSummary, error) {
			return t.rpc.GetWorkoutHistory(ctx, rpc.GetWorkoutParams{WorkoutID: id})
		})
}

func (t *Tracker) Session(ctx context.Context, id string) (*models.Session, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Sessions.Detail(id),
		func(ctx context.Context) (*models.Session, error) {
			return t.rpc.GetSession(ctx, rpc.GetSessionParams{SessionID: id})
		})
}

// ActiveSession returns nil when no session is in progress.
func (t *Tracker) ActiveSession(ctx context.Context) (*models.Session, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Sessions.Active(),
		func(ctx context.Context) (*models.Session, error) {
			return t.rpc.GetActiveSession(ctx)
		})
}

func (t *Tracker) Exercises(ctx context.Context) ([]models.Exercise, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Exercises.List(),
		func(ctx context.Context) ([]models.Exercise, error) {
			return t.rpc.ListExercises(ctx)
		})
}

func (t *Tracker) ExerciseHistory(ctx context.Context, id string) ([]models.ExerciseHistoryEntry, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Exercises.History(id),
		func(ctx context.Context) ([]models.ExerciseHistoryEntry, error) {
			return t.rpc.GetExerciseHistory(ctx, rpc.GetExerciseHistoryParams{ExerciseID: id})
		})
}

func (t *Tracker) Cycles(ctx context.Context) ([]models.Cycle, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Cycles.List(),
		func(ctx context.Context) ([]models.Cycle, error) {
			return t.rpc.ListCycles(ctx)
		})
}

func (t *Tracker) Cycle(ctx context.Context, id string) (*models.Cycle, error) {
	return querycache.Fetch(ctx, t.cache, querycache.Cycles.Detail(id),
		func(ctx context.Context) (*models.Cycle, error) {
			return t.rpc.GetCycle(ctx, rpc.GetCycleParams{CycleID: id})
		})
}
