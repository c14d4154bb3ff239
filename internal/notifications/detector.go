package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/settings"
	"ecokosova-dashboard/internal/threshold"
)

const (
	DefaultInterval = 30 * time.Second

	CriticalTitle = "Kontejner Kritik"
)

// ErrCycleInFlight is returned by RunOnce while a previous cycle is still running
var ErrCycleInFlight = errors.New("detection cycle already in flight")

// ContainerSource fetches the full container collection
type ContainerSource interface {
	ListContainers(ctx context.Context) ([]models.Container, error)
}

// ThresholdSource returns the thresholds active right now
type ThresholdSource interface {
	Thresholds() threshold.Config
}

// settingsSubscriber is implemented by threshold sources that announce
// changes, such as settings.Manager
type settingsSubscriber interface {
	Subscribe() (<-chan settings.Settings, func())
}

// Detector polls the backend and raises one unread notification per
// critical container.
type Detector struct {
	store      *Store
	source     ContainerSource
	thresholds ThresholdSource
	interval   time.Duration
	logger     *slog.Logger

	inFlight atomic.Bool
	wg       sync.WaitGroup
}

func NewDetector(store *Store, source ContainerSource, thresholds ThresholdSource, interval time.Duration, logger *slog.Logger) *Detector {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		store:      store,
		source:     source,
		thresholds: thresholds,
		interval:   interval,
		logger:     logger.With("component", "critical-detector"),
	}
}

// Run checks once immediately and then on every tick until ctx is done.
// Ticks that arrive while a cycle is still running are skipped. When the
// threshold source announces settings changes, each change triggers a check.
func (d *Detector) Run(ctx context.Context) {
	d.logger.Info("starting critical detection", "interval", d.interval)

	var changes <-chan settings.Settings
	if sub, ok := d.thresholds.(settingsSubscriber); ok {
		ch, unsubscribe := sub.Subscribe()
		defer unsubscribe()
		changes = ch
	}

	d.spawn(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.wg.Wait()
			d.logger.Info("critical detection stopped")
			return
		case <-ticker.C:
			d.spawn(ctx)
		case <-changes:
			d.spawn(ctx)
		}
	}
}

func (d *Detector) spawn(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if _, err := d.RunOnce(ctx); err != nil {
			if errors.Is(err, ErrCycleInFlight) {
				d.logger.Debug("skipping tick, previous cycle still running")
				return
			}
			if ctx.Err() == nil {
				d.logger.Warn("critical detection failed", "error", err)
			}
		}
	}()
}

// RunOnce performs a single detection cycle and returns how many
// notifications it added.
func (d *Detector) RunOnce(ctx context.Context) (int, error) {
	if !d.inFlight.CompareAndSwap(false, true) {
		return 0, ErrCycleInFlight
	}
	defer d.inFlight.Store(false)

	containers, err := d.source.ListContainers(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch containers: %w", err)
	}
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}

	cfg := d.thresholds.Thresholds()
	added := 0
	for _, c := range containers {
		if threshold.Classify(c.FillLevel, cfg) != threshold.Critical {
			continue
		}
		if _, ok := d.store.AddUnlessUnread(ctx, CriticalInput(c)); ok {
			added++
			d.logger.Info("critical container detected", "container_id", c.ID, "fill_level", c.FillLevel)
		}
	}
	return added, nil
}

// CriticalInput builds the alert for a critical container
func CriticalInput(c models.Container) Input {
	return Input{
		Type:        TypeCritical,
		Title:       CriticalTitle,
		Message:     fmt.Sprintf("Kontejneri %s ka mbushje %d%%", c.ID, c.FillLevel),
		ContainerID: c.ID,
	}
}
