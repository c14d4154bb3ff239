package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/prefs"
	"ecokosova-dashboard/internal/settings"
	"ecokosova-dashboard/internal/threshold"
)

type fakeSource struct {
	containers []models.Container
	err        error
	started    chan struct{}
	release    chan struct{}
}

func (f *fakeSource) ListContainers(ctx context.Context) ([]models.Container, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.containers, f.err
}

type staticThresholds threshold.Config

func (s staticThresholds) Thresholds() threshold.Config { return threshold.Config(s) }

var defaults = staticThresholds(threshold.DefaultConfig())

func TestDetectorDedupesUnread(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, prefs.NewMemoryStore())
	src := &fakeSource{containers: []models.Container{
		{ID: "C-1", FillLevel: 95},
		{ID: "C-2", FillLevel: 75},
		{ID: "C-3", FillLevel: 20},
	}}
	d := NewDetector(store, src, defaults, time.Minute, nil)

	added, err := d.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "C-1", list[0].ContainerID)
	assert.Equal(t, TypeCritical, list[0].Type)
	assert.Equal(t, "Kontejner Kritik", list[0].Title)
	assert.Equal(t, "Kontejneri C-1 ka mbushje 95%", list[0].Message)

	// still critical, still unread: nothing new
	added, err = d.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Len(t, store.List(), 1)

	// once read, the next cycle alerts again
	store.MarkAsRead(ctx, list[0].ID)
	added, err = d.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Len(t, store.List(), 2)
	assert.True(t, store.HasUnreadFor("C-1"))
}

func TestDetectorUsesCurrentThresholds(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, prefs.NewMemoryStore())
	src := &fakeSource{containers: []models.Container{{ID: "C-2", FillLevel: 75}}}
	d := NewDetector(store, src, staticThresholds{CriticalThreshold: 70, WarningThreshold: 50}, time.Minute, nil)

	added, err := d.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestDetectorFetchErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, prefs.NewMemoryStore())
	store.Add(ctx, Input{Type: TypeInfo, Title: "existing"})

	d := NewDetector(store, &fakeSource{err: errors.New("boom")}, defaults, time.Minute, nil)
	_, err := d.RunOnce(ctx)
	require.Error(t, err)
	assert.Len(t, store.List(), 1)
}

func TestDetectorSkipsOverlappingCycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, prefs.NewMemoryStore())
	src := &fakeSource{
		containers: []models.Container{{ID: "C-1", FillLevel: 99}},
		started:    make(chan struct{}, 1),
		release:    make(chan struct{}),
	}
	d := NewDetector(store, src, defaults, time.Minute, nil)

	done := make(chan int)
	go func() {
		n, _ := d.RunOnce(ctx)
		done <- n
	}()
	<-src.started

	_, err := d.RunOnce(ctx)
	assert.ErrorIs(t, err, ErrCycleInFlight)

	close(src.release)
	assert.Equal(t, 1, <-done)
	assert.Len(t, store.List(), 1)
}

func TestDetectorRunChecksImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := NewStore(ctx, prefs.NewMemoryStore())
	src := &fakeSource{containers: []models.Container{{ID: "C-7", FillLevel: 91}}}
	d := NewDetector(store, src, defaults, time.Hour, nil)

	stopped := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(stopped)
	}()

	assert.Eventually(t, func() bool { return store.HasUnreadFor("C-7") }, time.Second, 10*time.Millisecond)
	cancel()
	<-stopped
}

func TestDetectorRechecksOnSettingsChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := prefs.NewMemoryStore()
	store := NewStore(ctx, p)
	mgr := settings.NewManager(ctx, p)
	src := &fakeSource{containers: []models.Container{{ID: "C-2", FillLevel: 75}}}
	d := NewDetector(store, src, mgr, time.Hour, nil)

	stopped := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(stopped)
	}()
	defer func() {
		cancel()
		<-stopped
	}()

	// 75% is only a warning under the defaults
	time.Sleep(50 * time.Millisecond)
	assert.False(t, store.HasUnreadFor("C-2"))

	lowered := settings.Default()
	lowered.CriticalThreshold = 70
	lowered.WarningThreshold = 50
	require.NoError(t, mgr.Save(ctx, lowered))

	assert.Eventually(t, func() bool { return store.HasUnreadFor("C-2") }, time.Second, 10*time.Millisecond)
}
