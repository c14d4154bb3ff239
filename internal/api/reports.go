package api

import (
	"context"

	"ecokosova-dashboard/internal/models"
)

func (c *Client) ListReports(ctx context.Context) ([]models.RawReport, error) {
	items, _, err := getList[models.RawReport](ctx, c, "/reports", nil)
	return items, err
}

func (c *Client) GenerateReport(ctx context.Context, reportType string) (*models.RawReport, error) {
	var out models.RawReport
	body := map[string]string{"type": reportType}
	if err := c.send(ctx, "POST", "/reports/generate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetReport(ctx context.Context, id string) (*models.RawReport, error) {
	var out models.RawReport
	if err := c.get(ctx, "/reports/"+pathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
