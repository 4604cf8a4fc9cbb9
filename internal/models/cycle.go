package models

import "time"

// Cycle is a time-boxed repetition plan over a single workout.
type Cycle struct {
	ID                string    `json:"id"`
	WorkoutID         string    `json:"workout_id"`
	WorkoutName       string    `json:"workout_name,omitempty"`
	DurationWeeks     int       `json:"duration_weeks"`
	StartDate         time.Time `json:"start_date"`
	CompletedSessions int       `json:"completed_sessions"`
}

func (c Cycle) EndDate() time.Time {
	return c.StartDate.AddDate(0, 0, 7*c.DurationWeeks)
}
