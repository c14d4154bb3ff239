package routes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecokosova-dashboard/internal/models"
)

func TestCacheTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c := NewCache(10, time.Minute)
	c.now = func() time.Time { return now }

	c.Set("k", models.Route{ZoneID: "Z-1"})
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "Z-1", got.ZoneID)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)

	s := c.Stats()
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, int64(1), s.Evictions)
	assert.Equal(t, 0, s.Size)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c := NewCache(2, time.Hour)
	c.now = func() time.Time { return now }

	c.Set("a", models.Route{ZoneID: "A"})
	now = now.Add(time.Second)
	c.Set("b", models.Route{ZoneID: "B"})
	now = now.Add(time.Second)
	c.Get("a")
	now = now.Add(time.Second)
	c.Set("c", models.Route{ZoneID: "C"})

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
}

func TestKeyDistinguishesQueries(t *testing.T) {
	q := models.DefaultRouteQuery()
	other := q
	other.Strategy = models.RoutePriorityBased

	assert.Equal(t, Key("Z-1", q), Key("Z-1", q))
	assert.NotEqual(t, Key("Z-1", q), Key("Z-2", q))
	assert.NotEqual(t, Key("Z-1", q), Key("Z-1", other))
}

type countingSource struct {
	calls int
	err   error
	last  models.RouteQuery
}

func (s *countingSource) ZoneRoute(ctx context.Context, zoneID string, q models.RouteQuery) (*models.Route, error) {
	s.calls++
	s.last = q
	if s.err != nil {
		return nil, s.err
	}
	return &models.Route{ZoneID: zoneID, RouteType: q.Strategy}, nil
}

func TestServiceCachesAndInvalidates(t *testing.T) {
	ctx := context.Background()
	src := &countingSource{}
	svc := NewService(src, nil)

	r, err := svc.ZoneRoute(ctx, "Z-1", models.RouteQuery{})
	require.NoError(t, err)
	assert.Equal(t, models.RouteOptimal, r.RouteType)
	assert.Equal(t, models.DefaultRouteQuery(), src.last)

	_, err = svc.ZoneRoute(ctx, "Z-1", models.RouteQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	svc.Invalidate()
	_, err = svc.ZoneRoute(ctx, "Z-1", models.RouteQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestServiceDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	src := &countingSource{err: errors.New("down")}
	svc := NewService(src, nil)

	_, err := svc.ZoneRoute(ctx, "Z-1", models.RouteQuery{})
	require.Error(t, err)
	_, err = svc.ZoneRoute(ctx, "Z-1", models.RouteQuery{})
	require.Error(t, err)
	assert.Equal(t, 2, src.calls)
	assert.Equal(t, 0, svc.Stats().Size)
}
