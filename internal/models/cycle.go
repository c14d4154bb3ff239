package models

import "time"

// CycleStatus is the lifecycle state of a collection cycle
type CycleStatus string

const (
	CyclePlanned   CycleStatus = "PLANNED"
	CycleActive    CycleStatus = "ACTIVE"
	CycleCompleted CycleStatus = "COMPLETED"
	CycleCancelled CycleStatus = "CANCELLED"
)

// Cycle ("cikli i mbledhjes") is a recurring collection bound to a zone and optionally a truck
type Cycle struct {
	ID             string      `json:"id"`
	ScheduleTime   string      `json:"scheduleTime"` // local date-time, e.g. 2025-03-01T08:00:00
	MaxCapacity    int         `json:"maxCapacity"`
	CollectionDays []string    `json:"collectionDays"`
	ZoneID         string      `json:"zoneId"`
	TruckID        string      `json:"kamioniId,omitempty"`
	Status         CycleStatus `json:"status"`
	CreatedAt      *time.Time  `json:"createdAt,omitempty"`
	LastUpdated    *time.Time  `json:"lastUpdated,omitempty"`
}

type CreateCycleRequest struct {
	ID             string   `json:"id"`
	ScheduleTime   string   `json:"scheduleTime"`
	MaxCapacity    int      `json:"maxCapacity"`
	CollectionDays []string `json:"collectionDays"`
	ZoneID         string   `json:"zoneId"`
	TruckID        string   `json:"kamioniId,omitempty"`
}

type UpdateCycleRequest struct {
	ScheduleTime   *string  `json:"scheduleTime,omitempty"`
	MaxCapacity    *int     `json:"maxCapacity,omitempty"`
	CollectionDays []string `json:"collectionDays,omitempty"`
	TruckID        *string  `json:"kamioniId,omitempty"`
}
