package api

import (
	"context"

	"ecokosova-dashboard/internal/models"
)

const cyclePageSize = 100

func (c *Client) ListCycles(ctx context.Context) ([]models.Cycle, error) {
	return getAll[models.Cycle](ctx, c, "/ciklet", cyclePageSize)
}

func (c *Client) ListActiveCycles(ctx context.Context) ([]models.Cycle, error) {
	items, _, err := getList[models.Cycle](ctx, c, "/ciklet/active", nil)
	return items, err
}

func (c *Client) ListCyclesByZone(ctx context.Context, zoneID string) ([]models.Cycle, error) {
	items, _, err := getList[models.Cycle](ctx, c, "/ciklet/zone/"+pathEscape(zoneID), nil)
	return items, err
}

func (c *Client) GetCycle(ctx context.Context, id string) (*models.Cycle, error) {
	var out models.Cycle
	if err := c.get(ctx, "/ciklet/"+pathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCycle(ctx context.Context, req models.CreateCycleRequest) (*models.Cycle, error) {
	var out models.Cycle
	if err := c.send(ctx, "POST", "/ciklet", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCycle(ctx context.Context, id string, req models.UpdateCycleRequest) (*models.Cycle, error) {
	var out models.Cycle
	if err := c.send(ctx, "PUT", "/ciklet/"+pathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCycle(ctx context.Context, id string) error {
	return c.send(ctx, "DELETE", "/ciklet/"+pathEscape(id), nil, nil)
}

// ActivateCycle, CompleteCycle and CancelCycle drive the cycle state machine
func (c *Client) ActivateCycle(ctx context.Context, id string) (*models.Cycle, error) {
	return c.cycleTransition(ctx, id, "activate")
}

func (c *Client) CompleteCycle(ctx context.Context, id string) (*models.Cycle, error) {
	return c.cycleTransition(ctx, id, "complete")
}

func (c *Client) CancelCycle(ctx context.Context, id string) (*models.Cycle, error) {
	return c.cycleTransition(ctx, id, "cancel")
}

func (c *Client) cycleTransition(ctx context.Context, id, action string) (*models.Cycle, error) {
	var out models.Cycle
	if err := c.send(ctx, "POST", "/ciklet/"+pathEscape(id)+"/"+action, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
