package api

import (
	"context"
	"net/url"
	"strconv"

	"ecokosova-dashboard/internal/models"
)

func routeQuery(q models.RouteQuery) url.Values {
	v := url.Values{}
	v.Set("startLat", strconv.FormatFloat(q.StartLat, 'f', -1, 64))
	v.Set("startLon", strconv.FormatFloat(q.StartLon, 'f', -1, 64))
	if q.Strategy != "" {
		v.Set("strategy", q.Strategy)
	}
	return v
}

// ZoneRoute asks the backend to compute a collection route for one zone
func (c *Client) ZoneRoute(ctx context.Context, zoneID string, q models.RouteQuery) (*models.Route, error) {
	var out models.Route
	if err := c.get(ctx, "/routes/zone/"+pathEscape(zoneID), routeQuery(q), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AllRoutes(ctx context.Context, q models.RouteQuery) ([]models.Route, error) {
	items, _, err := getList[models.Route](ctx, c, "/routes/all", routeQuery(q))
	return items, err
}
