// Package toast is the queue of short-lived user-facing messages.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultDuration = 5 * time.Second

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  Severity      `json:"type"`
	Duration  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Event kinds delivered to subscribers
const (
	EventPushed    = "pushed"
	EventDismissed = "dismissed"
)

type Event struct {
	Kind  string `json:"kind"`
	Toast Toast  `json:"toast"`
}

type entry struct {
	toast Toast
	timer *time.Timer
}

// Queue holds the live toasts. Each toast owns its own timer, so removing
// one never touches another's.
type Queue struct {
	mu     sync.Mutex
	order  []string
	live   map[string]*entry
	subs   []func(Event)
	closed bool
}

func NewQueue() *Queue {
	return &Queue{live: make(map[string]*entry)}
}

// Subscribe registers fn for push and dismiss events
func (q *Queue) Subscribe(fn func(Event)) {
	q.mu.Lock()
	q.subs = append(q.subs, fn)
	q.mu.Unlock()
}

// Push adds a toast that removes itself after duration (DefaultDuration if <= 0)
func (q *Queue) Push(message string, severity Severity, duration time.Duration) Toast {
	if duration <= 0 {
		duration = DefaultDuration
	}
	t := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return t
	}
	e := &entry{toast: t}
	q.live[t.ID] = e
	q.order = append(q.order, t.ID)
	e.timer = time.AfterFunc(duration, func() { q.Dismiss(t.ID) })
	subs := q.subs
	q.mu.Unlock()

	publish(subs, Event{Kind: EventPushed, Toast: t})
	return t
}

// Dismiss removes a toast and stops its timer. Unknown ids are a no-op.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	e, ok := q.live[id]
	if !ok {
		q.mu.Unlock()
		return false
	}
	e.timer.Stop()
	delete(q.live, id)
	for i, oid := range q.order {
		if oid == id {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	subs := q.subs
	q.mu.Unlock()

	publish(subs, Event{Kind: EventDismissed, Toast: e.toast})
	return true
}

// Active returns the live toasts in insertion order
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, 0, len(q.order))
	for _, id := range q.order {
		out = append(out, q.live[id].toast)
	}
	return out
}

// Close stops every pending timer and drops the live toasts
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.live {
		e.timer.Stop()
	}
	q.live = make(map[string]*entry)
	q.order = nil
	q.closed = true
}

func (q *Queue) Success(message string) Toast { return q.Push(message, Success, 0) }
func (q *Queue) Error(message string) Toast   { return q.Push(message, Error, 0) }
func (q *Queue) Warning(message string) Toast { return q.Push(message, Warning, 0) }
func (q *Queue) Info(message string) Toast    { return q.Push(message, Info, 0) }

func publish(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}
