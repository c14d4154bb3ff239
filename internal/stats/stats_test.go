package stats

import (
	"testing"

	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/threshold"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeScenario(t *testing.T) {
	containers := []models.Container{
		{ID: "C-1", FillLevel: 95, Operational: true},
		{ID: "C-2", FillLevel: 75, Operational: true},
		{ID: "C-3", FillLevel: 20, Operational: false},
	}

	got := Summarize(containers, threshold.DefaultConfig())

	assert.Equal(t, Statistics{Total: 3, Critical: 1, Warning: 1, Normal: 1, Offline: 1}, got)
}

func TestSummarizeOfflineOverlapsCritical(t *testing.T) {
	containers := []models.Container{
		{ID: "C-1", FillLevel: 99, Operational: false},
		{ID: "C-2", FillLevel: 0, Operational: false},
	}

	got := Summarize(containers, threshold.DefaultConfig())

	assert.Equal(t, 1, got.Critical)
	assert.Equal(t, 1, got.Normal)
	assert.Equal(t, 2, got.Offline)
}

func TestSummarizePartitionsTotal(t *testing.T) {
	cfgs := []threshold.Config{
		threshold.DefaultConfig(),
		{CriticalThreshold: 60, WarningThreshold: 30},
		{CriticalThreshold: 100, WarningThreshold: 0},
	}

	var containers []models.Container
	for fill := -10; fill <= 110; fill += 3 {
		containers = append(containers, models.Container{FillLevel: fill, Operational: fill%2 == 0})
	}

	for _, cfg := range cfgs {
		s := Summarize(containers, cfg)
		assert.Equal(t, s.Total, s.Critical+s.Warning+s.Normal, "cfg=%+v", cfg)
		assert.Equal(t, len(containers), s.Total)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Statistics{}, Summarize(nil, threshold.DefaultConfig()))
	assert.Zero(t, AverageFill(nil))
}

func TestSummarizeZones(t *testing.T) {
	containers := []models.Container{
		{ID: "A-1", ZoneID: "Z2", FillLevel: 92, Operational: true},
		{ID: "A-2", ZoneID: "Z1", FillLevel: 40, Operational: false},
		{ID: "A-3", ZoneID: "Z1", FillLevel: 60, Operational: true},
	}

	zones := SummarizeZones(containers, threshold.DefaultConfig())
	require.Len(t, zones, 2)

	assert.Equal(t, "Z1", zones[0].ZoneID)
	assert.Equal(t, 2, zones[0].Total)
	assert.Equal(t, 0, zones[0].Critical)
	assert.Equal(t, 1, zones[0].Operational)
	assert.InDelta(t, 50.0, zones[0].AverageFillLevel, 0.001)

	assert.Equal(t, "Z2", zones[1].ZoneID)
	assert.Equal(t, 1, zones[1].Critical)
}
