package models

import "time"

const (
	CategoryStrength = "strength"
	CategoryCardio   = "cardio"
	CategoryMobility = "mobility"
	CategoryBalance  = "balance"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryStrength, CategoryCardio, CategoryMobility, CategoryBalance:
		return true
	}
	return false
}

type Exercise struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	TimesUsed   int        `json:"times_used"`
	LastUsed    *time.Time `json:"last_used,omitempty"`
}

// ExerciseHistoryEntry is one logged set of an exercise across all sessions,
// newest first as returned by the backend.
type ExerciseHistoryEntry struct {
	SessionID   string    `json:"session_id"`
	Reps        int       `json:"reps"`
	Weight      float32   `json:"weight"`
	Volume      float32   `json:"volume"`
	CompletedAt time.Time `json:"completed_at"`
}
