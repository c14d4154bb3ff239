package models

// Zone is an administrative grouping of containers
type Zone struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Municipality    string  `json:"municipality"`
	CenterLatitude  float64 `json:"centerLatitude"`
	CenterLongitude float64 `json:"centerLongitude"`
	Status          string  `json:"status"`
	Description     string  `json:"description,omitempty"`
}

// ZoneStatistics is computed by the backend per zone
type ZoneStatistics struct {
	ZoneID                string  `json:"zoneId"`
	ZoneName              string  `json:"zoneName"`
	TotalContainers       int     `json:"totalContainers"`
	CriticalContainers    int     `json:"criticalContainers"`
	OperationalContainers int     `json:"operationalContainers"`
	AverageFillLevel      float64 `json:"averageFillLevel"`
	Status                string  `json:"status"`
}

// Zone statuses as reported by the backend
const (
	ZoneStatusActive      = "Aktive"
	ZoneStatusCritical    = "Kritike"
	ZoneStatusMaintenance = "Në Mirëmbajtje"
)

type CreateZoneRequest struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Municipality    string  `json:"municipality"`
	CenterLatitude  float64 `json:"centerLatitude"`
	CenterLongitude float64 `json:"centerLongitude"`
	Description     string  `json:"description,omitempty"`
}

type UpdateZoneRequest struct {
	Name            *string  `json:"name,omitempty"`
	Municipality    *string  `json:"municipality,omitempty"`
	CenterLatitude  *float64 `json:"centerLatitude,omitempty"`
	CenterLongitude *float64 `json:"centerLongitude,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Description     *string  `json:"description,omitempty"`
}
