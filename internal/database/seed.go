package database

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
)

// SeedPreferences writes each default value under its key unless the key
// already holds something. Existing user preferences are never overwritten.
func SeedPreferences(db *sqlx.DB, defaults map[string]any) (int, error) {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seeded := 0
	for _, key := range keys {
		value, err := json.Marshal(defaults[key])
		if err != nil {
			return seeded, fmt.Errorf("encode %s: %w", key, err)
		}

		res, err := db.NamedExec(`
			INSERT INTO preferences (key, value, updated_at)
			VALUES (:key, :value, :updated_at)
			ON CONFLICT (key) DO NOTHING
		`, map[string]interface{}{
			"key":        key,
			"value":      string(value),
			"updated_at": time.Now().Unix(),
		})
		if err != nil {
			return seeded, fmt.Errorf("seed %s: %w", key, err)
		}

		if n, _ := res.RowsAffected(); n > 0 {
			seeded++
			log.Printf("  ✓ Seeded preference: %s", key)
		} else {
			log.Printf("✓ Preference %s already set, skipping...", key)
		}
	}
	return seeded, nil
}
