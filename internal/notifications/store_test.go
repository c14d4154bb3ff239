package notifications

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecokosova-dashboard/internal/prefs"
)

func newSeqStore(t *testing.T, p prefs.Store) *Store {
	t.Helper()
	seq := 0
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewStore(context.Background(), p,
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("n-%d", seq)
		}),
		WithClock(func() time.Time { return base.Add(time.Duration(seq) * time.Second) }),
	)
}

func TestAddKeepsNewestFifty(t *testing.T) {
	ctx := context.Background()
	s := newSeqStore(t, prefs.NewMemoryStore())

	for i := 1; i <= 60; i++ {
		s.Add(ctx, Input{Type: TypeInfo, Title: fmt.Sprintf("t%d", i)})
	}

	list := s.List()
	require.Len(t, list, MaxEntries)
	assert.Equal(t, "t60", list[0].Title)
	assert.Equal(t, "t11", list[len(list)-1].Title)
	for _, n := range list {
		assert.NotContains(t, []string{"t1", "t5", "t10"}, n.Title)
	}
	assert.Equal(t, 50, s.UnreadCount())
}

func TestMarkAsRead(t *testing.T) {
	ctx := context.Background()
	s := newSeqStore(t, prefs.NewMemoryStore())

	first := s.Add(ctx, Input{Type: TypeInfo, Title: "a"})
	s.Add(ctx, Input{Type: TypeInfo, Title: "b"})

	assert.True(t, s.MarkAsRead(ctx, first.ID))
	assert.False(t, s.MarkAsRead(ctx, first.ID), "already read")
	assert.False(t, s.MarkAsRead(ctx, "missing"))
	assert.Equal(t, 1, s.UnreadCount())
}

func TestMarkAllAsRead(t *testing.T) {
	ctx := context.Background()
	s := newSeqStore(t, prefs.NewMemoryStore())

	for i := 0; i < 5; i++ {
		s.Add(ctx, Input{Type: TypeWarning})
	}
	assert.Equal(t, 5, s.MarkAllAsRead(ctx))
	assert.Equal(t, 0, s.UnreadCount())
	assert.Equal(t, 0, s.MarkAllAsRead(ctx))
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := prefs.NewMemoryStore()

	s := newSeqStore(t, p)
	n := s.Add(ctx, Input{Type: TypeCritical, Title: "x", ContainerID: "C-1"})
	s.MarkAsRead(ctx, n.ID)
	s.Add(ctx, Input{Type: TypeInfo, Title: "y"})

	reloaded := NewStore(ctx, p)
	list := reloaded.List()
	require.Len(t, list, 2)
	assert.Equal(t, "y", list[0].Title)
	assert.True(t, list[1].Read)
	assert.Equal(t, "C-1", list[1].ContainerID)
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	p := prefs.NewMemoryStore()
	require.NoError(t, p.Set(ctx, prefs.KeyNotifications, []byte("{not json")))

	s := NewStore(ctx, p)
	assert.Empty(t, s.List())
	assert.Equal(t, 0, s.UnreadCount())
}

func TestClearAllErasesSnapshot(t *testing.T) {
	ctx := context.Background()
	p := prefs.NewMemoryStore()
	s := newSeqStore(t, p)
	s.Add(ctx, Input{Type: TypeInfo})

	s.ClearAll(ctx)
	assert.Empty(t, s.List())

	_, err := p.Get(ctx, prefs.KeyNotifications)
	assert.ErrorIs(t, err, prefs.ErrNotFound)
}

func TestListenersSeeAdds(t *testing.T) {
	ctx := context.Background()
	s := newSeqStore(t, prefs.NewMemoryStore())

	var got []string
	s.OnAdd(func(n Notification) { got = append(got, n.Title) })

	s.Add(ctx, Input{Title: "one"})
	s.AddUnlessUnread(ctx, Input{Title: "two", ContainerID: "C-1"})
	s.AddUnlessUnread(ctx, Input{Title: "three", ContainerID: "C-1"})

	assert.Equal(t, []string{"one", "two"}, got)
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := newSeqStore(t, prefs.NewMemoryStore())
	s.Add(ctx, Input{Title: "orig"})

	list := s.List()
	list[0].Title = "changed"
	assert.Equal(t, "orig", s.List()[0].Title)
}
