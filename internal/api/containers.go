package api

import (
	"context"

	"ecokosova-dashboard/internal/models"
)

const containerPageSize = 100

// ListContainers fetches the full container collection from the monitoring endpoint
func (c *Client) ListContainers(ctx context.Context) ([]models.Container, error) {
	return getAll[models.Container](ctx, c, "/monitoring/containers", containerPageSize)
}

// ListCriticalContainers uses the backend's own critical filter (fixed 90%)
func (c *Client) ListCriticalContainers(ctx context.Context) ([]models.Container, error) {
	items, _, err := getList[models.Container](ctx, c, "/monitoring/containers/critical", nil)
	return items, err
}

func (c *Client) GetContainer(ctx context.Context, id string) (*models.Container, error) {
	var out models.Container
	if err := c.get(ctx, "/monitoring/containers/"+pathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListContainersByZone(ctx context.Context, zoneID string) ([]models.Container, error) {
	items, _, err := getList[models.Container](ctx, c, "/monitoring/containers/zone/"+pathEscape(zoneID), nil)
	return items, err
}

// UpdateFillLevel is the manual override of a container's sensor reading
func (c *Client) UpdateFillLevel(ctx context.Context, id string, fillLevel int) (string, error) {
	var msg string
	err := c.send(ctx, "PUT", "/monitoring/containers/"+pathEscape(id)+"/fill-level",
		models.UpdateFillLevelRequest{FillLevel: fillLevel}, &msg)
	return msg, err
}

func (c *Client) CreateContainer(ctx context.Context, req models.CreateContainerRequest) (*models.Container, error) {
	var out models.Container
	if err := c.send(ctx, "POST", "/containers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateContainer(ctx context.Context, id string, req models.UpdateContainerRequest) (*models.Container, error) {
	var out models.Container
	if err := c.send(ctx, "PUT", "/containers/"+pathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContainer(ctx context.Context, id string) error {
	return c.send(ctx, "DELETE", "/containers/"+pathEscape(id), nil, nil)
}

func (c *Client) EmptyContainer(ctx context.Context, id string) (string, error) {
	var msg string
	err := c.send(ctx, "POST", "/containers/"+pathEscape(id)+"/empty", nil, &msg)
	return msg, err
}

func (c *Client) ScheduleCollection(ctx context.Context, id string, req models.ScheduleCollectionRequest) (string, error) {
	var msg string
	err := c.send(ctx, "POST", "/containers/"+pathEscape(id)+"/schedule-collection", req, &msg)
	return msg, err
}
