package threshold

import (
	"errors"
	"fmt"
)

const (
	DefaultCritical = 90
	DefaultWarning  = 70

	// Fill levels at or below this are labelled empty for display only
	EmptyLevel = 10
)

var ErrInvalidThresholds = errors.New("invalid thresholds")

// Status is the three-way classification of a container's fill level
type Status string

const (
	Critical Status = "critical"
	Warning  Status = "warning"
	Normal   Status = "normal"
)

// Config holds the user-editable thresholds used by every classification
type Config struct {
	CriticalThreshold int `json:"criticalThreshold"`
	WarningThreshold  int `json:"warningThreshold"`
}

// DefaultConfig returns the 90/70 thresholds
func DefaultConfig() Config {
	return Config{
		CriticalThreshold: DefaultCritical,
		WarningThreshold:  DefaultWarning,
	}
}

// Validate enforces 0 <= warning < critical <= 100
func (c Config) Validate() error {
	if c.WarningThreshold < 0 || c.CriticalThreshold > 100 || c.WarningThreshold >= c.CriticalThreshold {
		return fmt.Errorf("%w: warning=%d critical=%d", ErrInvalidThresholds, c.WarningThreshold, c.CriticalThreshold)
	}
	return nil
}

// Classify maps a fill level to exactly one status. Out-of-range input is
// not rejected; values below the warning threshold (including negatives)
// classify as Normal.
func Classify(fillLevel int, cfg Config) Status {
	switch {
	case fillLevel >= cfg.CriticalThreshold:
		return Critical
	case fillLevel >= cfg.WarningThreshold:
		return Warning
	default:
		return Normal
	}
}

func IsCritical(fillLevel int, cfg Config) bool {
	return Classify(fillLevel, cfg) == Critical
}

// IsEmpty is a display-only label and does not affect Classify
func IsEmpty(fillLevel int) bool {
	return fillLevel <= EmptyLevel
}

// StatusText returns the dashboard label for a fill level
func StatusText(fillLevel int, cfg Config) string {
	switch Classify(fillLevel, cfg) {
	case Critical:
		return "KRITIK"
	case Warning:
		return "PARALAJMËRIM"
	}
	if IsEmpty(fillLevel) {
		return "BOS"
	}
	return "NORMAL"
}

// StatusColor returns the map pin / badge color for a fill level
func StatusColor(fillLevel int, cfg Config) string {
	switch Classify(fillLevel, cfg) {
	case Critical:
		return "red"
	case Warning:
		return "amber"
	default:
		return "green"
	}
}

// Clamp limits a fill level to [0, 100]
func Clamp(fillLevel int) int {
	if fillLevel < 0 {
		return 0
	}
	if fillLevel > 100 {
		return 100
	}
	return fillLevel
}
