package models

import (
	"fmt"
	"time"
)

// Group types form a closed set; the backend rejects anything else.
const (
	GroupSingle   = "single"
	GroupSuperset = "superset"
	GroupTriset   = "triset"
	GroupCircuit  = "circuit"
)

func ValidGroupType(t string) bool {
	switch t {
	case GroupSingle, GroupSuperset, GroupTriset, GroupCircuit:
		return true
	}
	return false
}

type Workout struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Groups      []WorkoutGroup `json:"groups"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type WorkoutGroup struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	GroupType   string        `json:"group_type"`
	RestSeconds int           `json:"rest_seconds"`
	Position    int           `json:"position"`
	Items       []WorkoutItem `json:"items"`
}

type WorkoutItem struct {
	ID           string   `json:"id"`
	ExerciseID   string   `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name,omitempty"`
	GroupLabel   string   `json:"group_label"` // e.g. "A1" for the first item of group A.
	Position     int      `json:"position"`
	TargetSets   *int     `json:"target_sets,omitempty"`
	TargetReps   *int     `json:"target_reps,omitempty"`
	TargetWeight *float32 `json:"target_weight,omitempty"`
	RestSeconds  *int     `json:"rest_seconds,omitempty"` // Overrides the group default.
	Notes        string   `json:"notes,omitempty"`
}

// EffectiveRest resolves the rest for an item: its own override wins,
// otherwise the owning group's default applies.
func (i WorkoutItem) EffectiveRest(group WorkoutGroup) int {
	if i.RestSeconds != nil {
		return *i.RestSeconds
	}
	return group.RestSeconds
}

// ValidatePositions checks that positions are contiguous starting at 1 and
// unique per parent. Both groups within a workout and items within a group
// must satisfy this before a reorder is sent to the backend.
func ValidatePositions(positions []int) error {
	seen := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p < 1 || p > len(positions) {
			return fmt.Errorf("position %d out of range 1..%d", p, len(positions))
		}
		if seen[p] {
			return fmt.Errorf("duplicate position %d", p)
		}
		seen[p] = true
	}
	return nil
}

func (w Workout) GroupPositions() []int {
	out := make([]int, len(w.Groups))
	for i, g := range w.Groups {
		out[i] = g.Position
	}
	return out
}
