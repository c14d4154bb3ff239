// Package refresh keeps a periodically refreshed snapshot of the container
// collection and its statistics.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"ecokosova-dashboard/internal/api"
	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/settings"
	"ecokosova-dashboard/internal/stats"
)

// Source is the subset of the backend gateway the refresher needs
type Source interface {
	ListContainers(ctx context.Context) ([]models.Container, error)
	UpdateFillLevel(ctx context.Context, id string, fillLevel int) (string, error)
}

// SettingsSource supplies the active settings and change notifications
type SettingsSource interface {
	Current() settings.Settings
	Subscribe() (<-chan settings.Settings, func())
}

type Snapshot struct {
	Containers []models.Container `json:"containers"`
	Statistics stats.Statistics   `json:"statistics"`
	Error      string             `json:"error,omitempty"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type Refresher struct {
	source   Source
	settings SettingsSource
	logger   *slog.Logger

	mu        sync.RWMutex
	snap      Snapshot
	committed uint64
	listeners []func(Snapshot)

	seq     atomic.Uint64
	stopped atomic.Bool
}

func New(source Source, s SettingsSource, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		source:   source,
		settings: s,
		logger:   logger.With("component", "container-refresher"),
	}
}

// OnUpdate registers fn to receive every committed snapshot
func (r *Refresher) OnUpdate(fn func(Snapshot)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// Snapshot returns the latest committed state
func (r *Refresher) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.snap
	s.Containers = append([]models.Container(nil), r.snap.Containers...)
	return s
}

// Run fetches immediately, then on every interval tick while auto-refresh is
// on. A settings change triggers an immediate re-fetch and resets the timer.
func (r *Refresher) Run(ctx context.Context) {
	changes, unsubscribe := r.settings.Subscribe()
	defer unsubscribe()
	defer r.Stop()

	r.refreshLogged(ctx)

	var ticker *time.Ticker
	reset := func(interval time.Duration) {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
		}
		if interval > 0 {
			ticker = time.NewTicker(interval)
		}
		r.logger.Info("refresh schedule", "interval", interval, "enabled", interval > 0)
	}
	reset(r.settings.Current().Interval())
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		var tick <-chan time.Time
		if ticker != nil {
			tick = ticker.C
		}

		select {
		case <-ctx.Done():
			return
		case <-tick:
			r.refreshLogged(ctx)
		case s := <-changes:
			reset(s.Interval())
			r.refreshLogged(ctx)
		}
	}
}

// Stop retires the refresher; results of fetches still in flight are dropped
func (r *Refresher) Stop() { r.stopped.Store(true) }

func (r *Refresher) refreshLogged(ctx context.Context) {
	if err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
		r.logger.Warn("container refresh failed", "error", err)
	}
}

// Refresh fetches the collection and commits it unless a newer fetch has
// already committed or the refresher was stopped. On failure the previous
// containers are kept and only the error is recorded.
func (r *Refresher) Refresh(ctx context.Context) error {
	seq := r.seq.Add(1)

	containers, err := r.source.ListContainers(ctx)
	if r.stopped.Load() {
		return nil
	}

	r.mu.Lock()
	if seq < r.committed {
		r.mu.Unlock()
		return err
	}
	r.committed = seq
	if err != nil {
		r.snap.Error = api.AsError(err).Message
	} else {
		r.snap = Snapshot{
			Containers: containers,
			Statistics: stats.Summarize(containers, r.settings.Current().Thresholds()),
			UpdatedAt:  time.Now(),
		}
	}
	snap := r.snap
	listeners := r.listeners
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return err
}

// UpdateFillLevel sends a manual reading to the backend and re-fetches.
// Once the backend has accepted the reading a failed re-fetch is only
// recorded on the snapshot.
func (r *Refresher) UpdateFillLevel(ctx context.Context, id string, fillLevel int) error {
	if fillLevel < 0 || fillLevel > 100 {
		return &api.Error{
			Message:    "Niveli i mbushjes duhet të jetë mes 0 dhe 100",
			StatusCode: 400,
			Details:    []api.FieldError{{Field: "fillLevel", Message: fmt.Sprintf("invalid value %d", fillLevel)}},
		}
	}
	if _, err := r.source.UpdateFillLevel(ctx, id, fillLevel); err != nil {
		return err
	}
	r.refreshLogged(ctx)
	return nil
}
