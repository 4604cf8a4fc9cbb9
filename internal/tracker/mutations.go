package tracker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vportela/forja/internal/models"
	"github.com/vportela/forja/internal/querycache"
	"github.com/vportela/forja/internal/rpc"
)

// Plain mutations: one RPC call, then the invalidation map. Mutations are
// never retried; a duplicate create is worse than a surfaced error.

func (t *Tracker) CreateWorkout(ctx context.Context, p rpc.CreateWorkoutParams) (string, error) {
	id, err := t.rpc.CreateWorkout(ctx, p)
	if err != nil {
		return "", err
	}
	t.cache.AfterMutation(ctx, querycache.MutCreateWorkout, querycache.Scope{WorkoutID: id})
	return id, nil
}

func (t *Tracker) UpdateWorkout(ctx context.Context, p rpc.UpdateWorkoutParams) error {
	if err := t.rpc.UpdateWorkout(ctx, p); err != nil {
		return err
	}
	t.cache.AfterMutation(ctx, querycache.MutUpdateWorkout, querycache.Scope{WorkoutID: p.WorkoutID})
	return nil
}

func (t *Tracker) DeleteWorkout(ctx context.Context, id string) error {
	if err := t.rpc.DeleteWorkout(ctx, rpc.DeleteWorkoutParams{WorkoutID: id}); err != nil {
		return err
	}
	t.cache.AfterMutation(ctx, querycache.MutDeleteWorkout, querycache.Scope{WorkoutID: id})
	return nil
}

func (t *Tracker) AddWorkoutGroup(ctx context.Context, p rpc.AddWorkoutGroupParams) (string, error) {
	id, err := t.rpc.AddWorkoutGroup(ctx, p)
	if err != nil {
		return "", err
	}
	t.cache.AfterMutation(ctx, querycache.MutAddWorkoutGroup, querycache.Scope{WorkoutID: p.WorkoutID})
	return id, nil
}

func (t *Tracker) AddWorkoutItem(ctx context.Context, workoutID string, p rpc.AddWorkoutItemParams) (string, error) {
	id, err := t.rpc.AddWorkoutItem(ctx, p)
	if err != nil {
		return "", err
	}
	t.cache.AfterMutation(ctx, querycache.MutAddWorkoutItem, querycache.Scope{WorkoutID: workoutID})
	return id, nil
}

func (t *Tracker) StartSession(ctx context.Context, p rpc.StartSessionParams) (*models.Session, error) {
	s, err := t.rpc.StartSession(ctx, p)
	if err != nil {
		return nil, err
	}
	scope := querycache.Scope{SessionID: s.ID}
	if p.CycleID != nil {
		scope.CycleID = *p.CycleID
	}
	t.cache.AfterMutation(ctx, querycache.MutStartSession, scope)
	return s, nil
}

func (t *Tracker) FinishSession(ctx context.Context, id string) (*models.Session, error) {
	s, err := t.rpc.FinishSession(ctx, rpc.FinishSessionParams{SessionID: id})
	if err != nil {
		return nil, err
	}
	scope := querycache.Scope{SessionID: s.ID}
	if s.WorkoutID != nil {
		scope.WorkoutID = *s.WorkoutID
	}
	if s.CycleID != nil {
		scope.CycleID = *s.CycleID
	}
	t.cache.AfterMutation(ctx, querycache.MutFinishSession, scope)
	return s, nil
}

//
// Optimistic mutations
//

// LogSet installs the set into the cached session detail under a local id
// before the backend answers; a failure restores the previous snapshot.
func (t *Tracker) LogSet(ctx context.Context, sessionID string, p rpc.LogSetParams) error {
	localID := uuid.New().String()

	outcome, err := querycache.Update(ctx, t.cache,
		querycache.Sessions.Detail(sessionID),
		querycache.MutLogSet,
		querycache.Scope{SessionID: sessionID},
		func(s models.Session) models.Session {
			return appendSet(s, p.SessionItemID, models.SetLog{
				ID:          localID,
				Reps:        p.Reps,
				Weight:      p.Weight,
				Volume:      models.SetVolume(p.Reps, p.Weight),
				CompletedAt: time.Now().UTC(),
			})
		},
		func(ctx context.Context) error {
			_, err := t.rpc.LogSet(ctx, p)
			return err
		},
	)
	t.log.Debug("log set finished",
		zap.String("session_id", sessionID),
		zap.String("outcome", outcome.String()),
	)
	return err
}

// ReorderGroups reorders a workout's groups speculatively; groupIDs is the
// complete new order.
func (t *Tracker) ReorderGroups(ctx context.Context, workoutID string, groupIDs []string) error {
	outcome, err := querycache.Update(ctx, t.cache,
		querycache.Workouts.Detail(workoutID),
		querycache.MutReorderWorkoutGroups,
		querycache.Scope{WorkoutID: workoutID},
		func(w models.Workout) models.Workout {
			return reorderGroups(w, groupIDs)
		},
		func(ctx context.Context) error {
			return t.rpc.ReorderWorkoutGroups(ctx, rpc.ReorderWorkoutGroupsParams{
				WorkoutID: workoutID,
				GroupIDs:  groupIDs,
			})
		},
	)
	t.log.Debug("reorder groups finished",
		zap.String("workout_id", workoutID),
		zap.String("outcome", outcome.String()),
	)
	return err
}

func appendSet(s models.Session, itemID string, set models.SetLog) models.Session {
	for gi := range s.Groups {
		for ii := range s.Groups[gi].Items {
			item := &s.Groups[gi].Items[ii]
			if item.ID != itemID {
				continue
			}
			set.Seq = len(item.Sets) + 1
			item.Sets = append(item.Sets, set)
			s.TotalVolume += set.Volume
			return s
		}
	}
	return s
}

// reorderGroups rebuilds the group slice in the order of ids; groups not
// named keep their relative order at the tail. Positions renumber 1..n.
func reorderGroups(w models.Workout, ids []string) models.Workout {
	byID := make(map[string]models.WorkoutGroup, len(w.Groups))
	for _, g := range w.Groups {
		byID[g.ID] = g
	}

	out := make([]models.WorkoutGroup, 0, len(w.Groups))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			out = append(out, g)
			delete(byID, id)
		}
	}
	for _, g := range w.Groups {
		if _, left := byID[g.ID]; left {
			out = append(out, g)
		}
	}
	for i := range out {
		out[i].Position = i + 1
	}
	w.Groups = out
	return w
}
