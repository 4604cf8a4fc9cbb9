package rpc

import (
	"context"

	"github.com/vportela/forja/internal/models"
)

type StartSessionParams struct {
	WorkoutID *string `json:"p_workout_id,omitempty"` // Nil starts an ad hoc session.
	CycleID   *string `json:"p_cycle_id,omitempty"`
}

// StartSession returns the new session with its groups and items copied
// from the workout (empty for ad hoc sessions).
func (c *Client) StartSession(ctx context.Context, p StartSessionParams) (*models.Session, error) {
	var out models.Session
	if err := c.call(ctx, "start_session", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type GetSessionParams struct {
	SessionID string `json:"p_session_id"`
}

func (c *Client) GetSession(ctx context.Context, p GetSessionParams) (*models.Session, error) {
	var out models.Session
	if err := c.call(ctx, "get_session", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetActiveSession returns nil without error when no session is running.
func (c *Client) GetActiveSession(ctx context.Context) (*models.Session, error) {
	var out *models.Session
	if err := c.call(ctx, "get_active_session", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type LogSetParams struct {
	SessionItemID string  `json:"p_session_item_id"`
	Reps          int     `json:"p_reps"`
	Weight        float32 `json:"p_weight"`
}

// LogSet returns the persisted set with its server-assigned id and sequence.
func (c *Client) LogSet(ctx context.Context, p LogSetParams) (*models.SetLog, error) {
	var out models.SetLog
	if err := c.call(ctx, "log_set", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type FinishSessionParams struct {
	SessionID string `json:"p_session_id"`
}

func (c *Client) FinishSession(ctx context.Context, p FinishSessionParams) (*models.Session, error) {
	var out models.Session
	if err := c.call(ctx, "finish_session", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
