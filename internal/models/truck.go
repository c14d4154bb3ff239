package models

import "time"

// Truck is a collection vehicle ("kamion")
type Truck struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	LicensePlate           string     `json:"licensePlate"`
	Capacity               int        `json:"capacity"`
	OperatorID             string     `json:"operatorId"`
	Status                 string     `json:"status"`
	Latitude               float64    `json:"latitude"`
	Longitude              float64    `json:"longitude"`
	CurrentRouteID         string     `json:"currentRouteId,omitempty"`
	AssignedContainerCount int        `json:"assignedContainerCount"`
	InstallationDate       *time.Time `json:"installationDate,omitempty"`
	LastUpdated            *time.Time `json:"lastUpdated,omitempty"`
	Available              bool       `json:"available"`
}

type CreateTruckRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LicensePlate string  `json:"licensePlate"`
	Capacity     int     `json:"capacity"`
	OperatorID   string  `json:"operatorId"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type UpdateTruckRequest struct {
	Name         *string  `json:"name,omitempty"`
	LicensePlate *string  `json:"licensePlate,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	OperatorID   *string  `json:"operatorId,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// AssignRouteRequest is the request body for POST /kamionet/{id}/assign-route
type AssignRouteRequest struct {
	RouteID        string `json:"routeId"`
	ContainerCount int    `json:"containerCount"`
}
