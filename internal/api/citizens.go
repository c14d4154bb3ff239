package api

import (
	"context"

	"ecokosova-dashboard/internal/models"
)

const citizenPageSize = 100

func (c *Client) ListCitizens(ctx context.Context) ([]models.Citizen, error) {
	return getAll[models.Citizen](ctx, c, "/qytetaret", citizenPageSize)
}

func (c *Client) GetCitizen(ctx context.Context, id string) (*models.Citizen, error) {
	var out models.Citizen
	if err := c.get(ctx, "/qytetaret/"+pathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCitizen(ctx context.Context, req models.CreateCitizenRequest) (*models.Citizen, error) {
	var out models.Citizen
	if err := c.send(ctx, "POST", "/qytetaret", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCitizen(ctx context.Context, id string, req models.UpdateCitizenRequest) (*models.Citizen, error) {
	var out models.Citizen
	if err := c.send(ctx, "PUT", "/qytetaret/"+pathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCitizen(ctx context.Context, id string) error {
	return c.send(ctx, "DELETE", "/qytetaret/"+pathEscape(id), nil, nil)
}
