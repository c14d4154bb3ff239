package models

import "encoding/json"

// RawReport is the backend's report envelope; Data depends on Type
type RawReport struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	GeneratedAt string          `json:"generatedAt"`
	Data        json.RawMessage `json:"data,omitempty"`
}
