package api

import (
	"context"

	"ecokosova-dashboard/internal/models"
)

func (c *Client) ListTrucks(ctx context.Context) ([]models.Truck, error) {
	items, _, err := getList[models.Truck](ctx, c, "/kamionet", nil)
	return items, err
}

func (c *Client) ListAvailableTrucks(ctx context.Context) ([]models.Truck, error) {
	items, _, err := getList[models.Truck](ctx, c, "/kamionet/available", nil)
	return items, err
}

func (c *Client) GetTruck(ctx context.Context, id string) (*models.Truck, error) {
	var out models.Truck
	if err := c.get(ctx, "/kamionet/"+pathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTruck(ctx context.Context, req models.CreateTruckRequest) (*models.Truck, error) {
	var out models.Truck
	if err := c.send(ctx, "POST", "/kamionet", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTruck(ctx context.Context, id string, req models.UpdateTruckRequest) (*models.Truck, error) {
	var out models.Truck
	if err := c.send(ctx, "PUT", "/kamionet/"+pathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTruck(ctx context.Context, id string) error {
	return c.send(ctx, "DELETE", "/kamionet/"+pathEscape(id), nil, nil)
}

func (c *Client) AssignRoute(ctx context.Context, id string, req models.AssignRouteRequest) (*models.Truck, error) {
	var out models.Truck
	if err := c.send(ctx, "POST", "/kamionet/"+pathEscape(id)+"/assign-route", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReleaseRoute(ctx context.Context, id string) (*models.Truck, error) {
	var out models.Truck
	if err := c.send(ctx, "POST", "/kamionet/"+pathEscape(id)+"/release-route", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
