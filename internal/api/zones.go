package api

import (
	"context"

	"ecokosova-dashboard/internal/models"
)

func (c *Client) ZoneStatistics(ctx context.Context) ([]models.ZoneStatistics, error) {
	items, _, err := getList[models.ZoneStatistics](ctx, c, "/zones/statistics", nil)
	return items, err
}

func (c *Client) ListZones(ctx context.Context) ([]models.Zone, error) {
	items, _, err := getList[models.Zone](ctx, c, "/zones", nil)
	return items, err
}

func (c *Client) CreateZone(ctx context.Context, req models.CreateZoneRequest) (*models.Zone, error) {
	var out models.Zone
	if err := c.send(ctx, "POST", "/zones", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateZone(ctx context.Context, id string, req models.UpdateZoneRequest) (*models.Zone, error) {
	var out models.Zone
	if err := c.send(ctx, "PUT", "/zones/"+pathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteZone(ctx context.Context, id string) error {
	return c.send(ctx, "DELETE", "/zones/"+pathEscape(id), nil, nil)
}
