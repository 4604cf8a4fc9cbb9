package rpc

import (
	"context"

	"github.com/vportela/forja/internal/models"
)

func (c *Client) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	var out []models.Workout
	if err := c.call(ctx, "get_workouts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetWorkoutParams struct {
	WorkoutID string `json:"p_workout_id"`
}

func (c *Client) GetWorkout(ctx context.Context, p GetWorkoutParams) (*models.Workout, error) {
	var out models.Workout
	if err := c.call(ctx, "get_workout", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWorkoutHistory(ctx context.Context, p GetWorkoutParams) ([]models.SessionSummary, error) {
	var out []models.SessionSummary
	if err := c.call(ctx, "get_workout_history", p, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateWorkoutParams struct {
	Name        string `json:"p_name"`
	Description string `json:"p_description,omitempty"`
}

// CreateWorkout returns the id of the new workout.
func (c *Client) CreateWorkout(ctx context.Context, p CreateWorkoutParams) (string, error) {
	var id string
	if err := c.call(ctx, "create_workout", p, &id); err != nil {
		return "", err
	}
	return id, nil
}

type UpdateWorkoutParams struct {
	WorkoutID   string  `json:"p_workout_id"`
	Name        *string `json:"p_name,omitempty"`
	Description *string `json:"p_description,omitempty"`
}

func (c *Client) UpdateWorkout(ctx context.Context, p UpdateWorkoutParams) error {
	return c.call(ctx, "update_workout", p, nil)
}

type DeleteWorkoutParams struct {
	WorkoutID string `json:"p_workout_id"`
}

func (c *Client) DeleteWorkout(ctx context.Context, p DeleteWorkoutParams) error {
	return c.call(ctx, "delete_workout", p, nil)
}

type AddWorkoutGroupParams struct {
	WorkoutID   string `json:"p_workout_id"`
	Name        string `json:"p_name"`
	GroupType   string `json:"p_group_type"`
	RestSeconds int    `json:"p_rest_seconds"`
}

// AddWorkoutGroup returns the id of the new group, appended at the last
// position of the workout.
func (c *Client) AddWorkoutGroup(ctx context.Context, p AddWorkoutGroupParams) (string, error) {
	var id string
	if err := c.call(ctx, "add_workout_group", p, &id); err != nil {
		return "", err
	}
	return id, nil
}

type ReorderWorkoutGroupsParams struct {
	WorkoutID string   `json:"p_workout_id"`
	GroupIDs  []string `json:"p_group_ids"` // New order; positions become 1..n.
}

func (c *Client) ReorderWorkoutGroups(ctx context.Context, p ReorderWorkoutGroupsParams) error {
	return c.call(ctx, "reorder_workout_groups", p, nil)
}

type AddWorkoutItemParams struct {
	GroupID      string   `json:"p_group_id"`
	ExerciseID   string   `json:"p_exercise_id"`
	TargetSets   *int     `json:"p_target_sets,omitempty"`
	TargetReps   *int     `json:"p_target_reps,omitempty"`
	TargetWeight *float32 `json:"p_target_weight,omitempty"`
	RestSeconds  *int     `json:"p_rest_seconds,omitempty"`
	Notes        string   `json:"p_notes,omitempty"`
}

func (c *Client) AddWorkoutItem(ctx context.Context, p AddWorkoutItemParams) (string, error) {
	var id string
	if err := c.call(ctx, "add_workout_item", p, &id); err != nil {
		return "", err
	}
	return id, nil
}
