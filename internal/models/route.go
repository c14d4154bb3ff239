package models

// Route types computed by the backend
const (
	RouteOptimal       = "OPTIMAL"
	RoutePriorityBased = "PRIORITY_BASED"
)

// Route is a server-computed collection route for one zone
type Route struct {
	ZoneID               string      `json:"zoneId"`
	ZoneName             string      `json:"zoneName"`
	ContainerCount       int         `json:"containerCount"`
	TotalDistanceKm      float64     `json:"totalDistanceKm"`
	EstimatedTimeMinutes float64     `json:"estimatedTimeMinutes"`
	TotalCapacityLiters  int         `json:"totalCapacityLiters"`
	Containers           []Container `json:"containers"`
	RouteType            string      `json:"routeType"`
}

// RouteQuery selects the start point and strategy for route computation
type RouteQuery struct {
	StartLat float64
	StartLon float64
	Strategy string
}

// DefaultRouteQuery starts from Prishtina city center
func DefaultRouteQuery() RouteQuery {
	return RouteQuery{
		StartLat: 42.6629,
		StartLon: 21.1655,
		Strategy: RouteOptimal,
	}
}
