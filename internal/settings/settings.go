package settings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"ecokosova-dashboard/internal/prefs"
	"ecokosova-dashboard/internal/threshold"

	"golang.org/x/text/language"
)

const MinRefreshInterval = 5 // seconds

var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the user-editable dashboard configuration
type Settings struct {
	AutoRefresh       bool   `json:"autoRefresh"`
	RefreshInterval   int    `json:"refreshInterval"` // seconds
	Notifications     bool   `json:"notifications"`
	CriticalThreshold int    `json:"criticalThreshold"`
	WarningThreshold  int    `json:"warningThreshold"`
	Language          string `json:"language"`
	Theme             string `json:"theme"`
}

func Default() Settings {
	return Settings{
		AutoRefresh:       true,
		RefreshInterval:   30,
		Notifications:     true,
		CriticalThreshold: threshold.DefaultCritical,
		WarningThreshold:  threshold.DefaultWarning,
		Language:          "sq",
		Theme:             "light",
	}
}

// Thresholds extracts the classification config
func (s Settings) Thresholds() threshold.Config {
	return threshold.Config{
		CriticalThreshold: s.CriticalThreshold,
		WarningThreshold:  s.WarningThreshold,
	}
}

// Interval returns the refresh period, or 0 when auto-refresh is off
func (s Settings) Interval() time.Duration {
	if !s.AutoRefresh || s.RefreshInterval <= 0 {
		return 0
	}
	return time.Duration(s.RefreshInterval) * time.Second
}

func (s Settings) Validate() error {
	if err := s.Thresholds().Validate(); err != nil {
		return err
	}
	if s.AutoRefresh && s.RefreshInterval < MinRefreshInterval {
		return fmt.Errorf("%w: refresh interval must be at least %ds", ErrInvalidSettings, MinRefreshInterval)
	}
	if _, err := language.Parse(s.Language); err != nil {
		return fmt.Errorf("%w: language %q: %v", ErrInvalidSettings, s.Language, err)
	}
	if s.Theme != "light" && s.Theme != "dark" {
		return fmt.Errorf("%w: theme %q", ErrInvalidSettings, s.Theme)
	}
	return nil
}

// Manager owns the active settings and broadcasts changes to subscribers
type Manager struct {
	store prefs.Store

	mu      sync.RWMutex
	current Settings
	subs    map[int]chan Settings
	nextSub int
}

// NewManager loads persisted settings once. Missing keys keep their default
// values; a corrupt snapshot or one with invalid thresholds falls back to
// defaults entirely.
func NewManager(ctx context.Context, store prefs.Store) *Manager {
	current := Default()
	if !prefs.LoadJSON(ctx, store, prefs.KeySettings, &current) {
		current = Default()
	}
	if err := current.Thresholds().Validate(); err != nil {
		log.Printf("⚠️  Stored thresholds rejected: %v (using defaults)", err)
		current = Default()
	}

	return &Manager{
		store:   store,
		current: current,
		subs:    make(map[int]chan Settings),
	}
}

func (m *Manager) Current() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) Thresholds() threshold.Config {
	return m.Current().Thresholds()
}

// Save validates, persists and broadcasts the new settings
func (m *Manager) Save(ctx context.Context, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := prefs.SaveJSON(ctx, m.store, prefs.KeySettings, s); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = s
	for _, ch := range m.subs {
		// drop stale pending value so the latest always lands
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
	m.mu.Unlock()

	log.Printf("⚙️  Settings updated (critical=%d warning=%d refresh=%ds auto=%v)",
		s.CriticalThreshold, s.WarningThreshold, s.RefreshInterval, s.AutoRefresh)
	return nil
}

// Subscribe returns a channel receiving every saved Settings value.
// The channel holds at most one pending value.
func (m *Manager) Subscribe() (<-chan Settings, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan Settings, 1)
	m.subs[id] = ch

	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}
