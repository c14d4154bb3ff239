package toast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDefaultDuration(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	tt := q.Info("saved")
	assert.Equal(t, DefaultDuration, tt.Duration)
	assert.Equal(t, Info, tt.Severity)
	require.Len(t, q.Active(), 1)
}

func TestAutoRemoval(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Push("short", Success, 30*time.Millisecond)
	require.Len(t, q.Active(), 1)

	assert.Eventually(t, func() bool { return len(q.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestDismissCancelsTimer(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var mu sync.Mutex
	dismissed := 0
	q.Subscribe(func(ev Event) {
		if ev.Kind == EventDismissed {
			mu.Lock()
			dismissed++
			mu.Unlock()
		}
	})

	tt := q.Push("manual", Warning, 50*time.Millisecond)
	assert.True(t, q.Dismiss(tt.ID))
	assert.Empty(t, q.Active())
	assert.False(t, q.Dismiss(tt.ID), "second dismiss is a no-op")

	// well past the original deadline
	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, dismissed)
	mu.Unlock()
}

func TestIndependentTimers(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	a := q.Push("a", Info, 40*time.Millisecond)
	b := q.Push("b", Info, time.Minute)
	c := q.Push("c", Error, time.Minute)

	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids(q.Active()))

	q.Dismiss(b.ID)
	assert.Equal(t, []string{a.ID, c.ID}, ids(q.Active()))

	assert.Eventually(t, func() bool {
		active := q.Active()
		return len(active) == 1 && active[0].ID == c.ID
	}, time.Second, 5*time.Millisecond)
}

func TestCloseStopsTimers(t *testing.T) {
	q := NewQueue()
	q.Push("x", Info, 20*time.Millisecond)
	q.Close()

	assert.Empty(t, q.Active())
	q.Push("after close", Info, 0)
	assert.Empty(t, q.Active())
}

func ids(ts []Toast) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}
