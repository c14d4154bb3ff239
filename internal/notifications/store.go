// Package notifications keeps the dashboard's notification log and raises
// critical-container alerts from periodic backend polls.
package notifications

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecokosova-dashboard/internal/prefs"
)

// MaxEntries is how many notifications are retained, newest first
const MaxEntries = 50

type Type string

const (
	TypeCritical Type = "critical"
	TypeWarning  Type = "warning"
	TypeInfo     Type = "info"
	TypeSuccess  Type = "success"
)

type Notification struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ContainerID string    `json:"containerId,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
}

// Input is what callers supply to Add; id, timestamp and read state are assigned
type Input struct {
	Type        Type
	Title       string
	Message     string
	ContainerID string
}

// Listener is called after a notification has been added and persisted
type Listener func(Notification)

type Store struct {
	mu        sync.Mutex
	prefs     prefs.Store
	items     []Notification
	listeners []Listener

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore loads the persisted log. A corrupt snapshot starts an empty log.
func NewStore(ctx context.Context, p prefs.Store, opts ...Option) *Store {
	s := &Store{
		prefs: p,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	var saved []Notification
	if prefs.LoadJSON(ctx, p, prefs.KeyNotifications, &saved) {
		if len(saved) > MaxEntries {
			saved = saved[:MaxEntries]
		}
		s.items = saved
	}
	return s
}

// OnAdd registers a listener for newly added notifications
func (s *Store) OnAdd(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// List returns a copy of the log, newest first
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadLocked()
}

func (s *Store) unreadLocked() int {
	n := 0
	for _, item := range s.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// HasUnreadFor reports whether an unread notification references containerID
func (s *Store) HasUnreadFor(containerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasUnreadForLocked(containerID)
}

func (s *Store) hasUnreadForLocked(containerID string) bool {
	for _, item := range s.items {
		if !item.Read && item.ContainerID == containerID {
			return true
		}
	}
	return false
}

// Add prepends a new unread notification and truncates the log to MaxEntries
func (s *Store) Add(ctx context.Context, in Input) Notification {
	s.mu.Lock()
	n := s.addLocked(ctx, in)
	listeners := s.listeners
	s.mu.Unlock()

	s.notify(listeners, n)
	return n
}

// AddUnlessUnread adds in only when no unread notification already references
// its container. The check and the insert happen under one lock.
func (s *Store) AddUnlessUnread(ctx context.Context, in Input) (Notification, bool) {
	s.mu.Lock()
	if in.ContainerID != "" && s.hasUnreadForLocked(in.ContainerID) {
		s.mu.Unlock()
		return Notification{}, false
	}
	n := s.addLocked(ctx, in)
	listeners := s.listeners
	s.mu.Unlock()

	s.notify(listeners, n)
	return n, true
}

func (s *Store) addLocked(ctx context.Context, in Input) Notification {
	n := Notification{
		ID:          s.newID(),
		Type:        in.Type,
		Title:       in.Title,
		Message:     in.Message,
		ContainerID: in.ContainerID,
		Timestamp:   s.now(),
	}

	items := make([]Notification, 0, min(len(s.items)+1, MaxEntries))
	items = append(items, n)
	items = append(items, s.items...)
	if len(items) > MaxEntries {
		items = items[:MaxEntries]
	}
	s.items = items
	s.persistLocked(ctx)
	return n
}

func (s *Store) notify(listeners []Listener, n Notification) {
	for _, l := range listeners {
		l(n)
	}
}

// MarkAsRead flips one notification to read. Unknown or already read ids are a no-op.
func (s *Store) MarkAsRead(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].Read {
			return false
		}
		s.items[i].Read = true
		s.persistLocked(ctx)
		return true
	}
	return false
}

// MarkAllAsRead returns how many entries changed
func (s *Store) MarkAllAsRead(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.items {
		if !s.items[i].Read {
			s.items[i].Read = true
			changed++
		}
	}
	if changed > 0 {
		s.persistLocked(ctx)
	}
	return changed
}

// ClearAll empties the log and erases the persisted snapshot
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.prefs.Delete(ctx, prefs.KeyNotifications); err != nil {
		log.Printf("⚠️  Failed to clear notifications: %v", err)
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	if err := prefs.SaveJSON(ctx, s.prefs, prefs.KeyNotifications, s.items); err != nil {
		log.Printf("⚠️  Failed to persist notifications: %v", err)
	}
}
