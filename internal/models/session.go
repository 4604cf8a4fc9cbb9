package models

import "time"

type Session struct {
	ID          string         `json:"id"`
	WorkoutID   *string        `json:"workout_id,omitempty"` // Nil for ad hoc sessions.
	CycleID     *string        `json:"cycle_id,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  *time.Time     `json:"finished_at,omitempty"`
	TotalVolume float32        `json:"total_volume"`
	Groups      []SessionGroup `json:"groups"`
}

type SessionGroup struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	GroupType   string        `json:"group_type"`
	RestSeconds int           `json:"rest_seconds"`
	Position    int           `json:"position"`
	Items       []SessionItem `json:"items"`
}

type SessionItem struct {
	ID           string   `json:"id"`
	ExerciseID   string   `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name,omitempty"`
	GroupLabel   string   `json:"group_label"`
	Position     int      `json:"position"`
	Sets         []SetLog `json:"sets"`
}

// SetLog is immutable once created; corrections happen by logging a new set.
type SetLog struct {
	ID          string    `json:"id"`
	Reps        int       `json:"reps"`
	Weight      float32   `json:"weight"`
	Volume      float32   `json:"volume"` // reps × weight, computed at creation.
	Seq         int       `json:"seq"`
	CompletedAt time.Time `json:"completed_at"`
}

func SetVolume(reps int, weight float32) float32 {
	return float32(reps) * weight
}

// ComputeVolume sums every set's volume across the session.
func (s Session) ComputeVolume() float32 {
	var total float32
	for _, g := range s.Groups {
		for _, it := range g.Items {
			for _, set := range it.Sets {
				total += set.Volume
			}
		}
	}
	return total
}

func (s Session) Finished() bool {
	return s.FinishedAt != nil
}

// SessionSummary is the per-session row returned by workout history queries.
type SessionSummary struct {
	ID          string     `json:"id"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	TotalVolume float32    `json:"total_volume"`
	SetCount    int        `json:"set_count"`
}
