package rpc

import (
	"context"

	"github.com/vportela/forja/internal/models"
)

func (c *Client) ListCycles(ctx context.Context) ([]models.Cycle, error) {
	var out []models.Cycle
	if err := c.call(ctx, "get_cycles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetCycleParams struct {
	CycleID string `json:"p_cycle_id"`
}

func (c *Client) GetCycle(ctx context.Context, p GetCycleParams) (*models.Cycle, error) {
	var out models.Cycle
	if err := c.call(ctx, "get_cycle", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
