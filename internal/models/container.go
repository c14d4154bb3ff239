package models

import (
	"fmt"
	"strings"
)

// ContainerType is the waste stream a container accepts
type ContainerType string

const (
	ContainerPlastic ContainerType = "PLASTIC"
	ContainerPaper   ContainerType = "PAPER"
	ContainerGlass   ContainerType = "GLASS"
	ContainerMixed   ContainerType = "MIXED"
)

// ParseContainerType accepts any casing ("plastic", "Plastic", "PLASTIC")
func ParseContainerType(s string) (ContainerType, error) {
	t := ContainerType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case ContainerPlastic, ContainerPaper, ContainerGlass, ContainerMixed:
		return t, nil
	}
	return "", fmt.Errorf("unknown container type %q", s)
}

// Container mirrors the backend's container response
type Container struct {
	ID              string  `json:"id"`
	ZoneID          string  `json:"zoneId"`
	Type            string  `json:"type"`
	FillLevel       int     `json:"fillLevel"`
	Status          string  `json:"status"`
	Capacity        int     `json:"capacity"` // liters
	Operational     bool    `json:"operational"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Address         string  `json:"address"`
	NeedsCollection bool    `json:"needsCollection"`
}

// CreateContainerRequest is the request body for POST /containers
type CreateContainerRequest struct {
	ID           string  `json:"id"`
	ZoneID       string  `json:"zoneId"`
	Type         string  `json:"type"`
	Capacity     int     `json:"capacity"`
	FillLevel    int     `json:"fillLevel"`
	Operational  bool    `json:"operational"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Street       string  `json:"street"`
	City         string  `json:"city"`
	Municipality string  `json:"municipality"`
}

// UpdateContainerRequest is the request body for PUT /containers/{id}
type UpdateContainerRequest struct {
	ZoneID      *string  `json:"zoneId,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	FillLevel   *int     `json:"fillLevel,omitempty"`
	Operational *bool    `json:"operational,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Street      *string  `json:"street,omitempty"`
	City        *string  `json:"city,omitempty"`
}

// UpdateFillLevelRequest is the request body for the manual fill override
type UpdateFillLevelRequest struct {
	FillLevel int `json:"fillLevel"`
}

// ScheduleCollectionRequest is the request body for POST /containers/{id}/schedule-collection
type ScheduleCollectionRequest struct {
	ScheduledTime string `json:"scheduledTime"`
}
