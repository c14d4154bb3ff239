// Package prefs persists the dashboard's key-value preferences (thresholds,
// refresh settings, notification log, session) as JSON documents.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Keys used by the dashboard stores
const (
	KeySettings      = "ecokosova_settings"
	KeyNotifications = "ecokosova_notifications"
	KeyUser          = "ecokosova_user"
)

var ErrNotFound = errors.New("preference not found")

// Store is a key-value store of JSON documents
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes key into v. A missing or corrupt entry leaves v untouched
// (callers pre-fill it with defaults) and reports false; it never fails.
// Decoding happens on a copy so a partially applied document never leaks.
func LoadJSON[T any](ctx context.Context, s Store, key string, v *T) bool {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("⚠️  Failed to read preference %q: %v (using defaults)", key, err)
		}
		return false
	}

	staged := *v
	if err := json.Unmarshal(raw, &staged); err != nil {
		log.Printf("⚠️  Corrupt preference %q: %v (using defaults)", key, err)
		return false
	}
	*v = staged
	return true
}

// SaveJSON encodes v and stores it under key
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
