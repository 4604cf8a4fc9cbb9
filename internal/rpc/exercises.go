package rpc

import (
	"context"

	"github.com/vportela/forja/internal/models"
)

func (c *Client) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	var out []models.Exercise
	if err := c.call(ctx, "get_exercises", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetExerciseHistoryParams struct {
	ExerciseID string `json:"p_exercise_id"`
}

func (c *Client) GetExerciseHistory(ctx context.Context, p GetExerciseHistoryParams) ([]models.ExerciseHistoryEntry, error) {
	var out []models.ExerciseHistoryEntry
	if err := c.call(ctx, "get_exercise_history", p, &out); err != nil {
		return nil, err
	}
	return out, nil
}
