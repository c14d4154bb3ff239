package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecokosova-dashboard/internal/notifications"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, m *messaging.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m)
	return "projects/x/messages/1", f.err
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func critical() notifications.Notification {
	return notifications.Notification{
		ID:          "n1",
		Type:        notifications.TypeCritical,
		Title:       "Kontejner Kritik",
		Message:     "Kontejneri C-1 ka mbushje 95%",
		ContainerID: "C-1",
	}
}

func TestCriticalAlertMessage(t *testing.T) {
	m := CriticalAlertMessage("critical-containers", critical())

	assert.Equal(t, "critical-containers", m.Topic)
	assert.Equal(t, "Kontejner Kritik", m.Notification.Title)
	assert.Equal(t, "C-1", m.Data["container_id"])
	assert.Equal(t, "high", m.Android.Priority)
}

func TestSendCriticalAlertError(t *testing.T) {
	s := &FCMService{client: &fakeSender{err: errors.New("quota")}, topic: "t"}
	err := s.SendCriticalAlert(context.Background(), critical())
	require.Error(t, err)
}

func TestListenerFiltersByTypeAndToggle(t *testing.T) {
	fake := &fakeSender{}
	s := &FCMService{client: fake, topic: "t"}

	enabled := true
	l := s.Listener(context.Background(), func() bool { return enabled })

	l(notifications.Notification{Type: notifications.TypeInfo})
	l(critical())
	assert.Eventually(t, func() bool { return fake.count() == 1 }, time.Second, 5*time.Millisecond)

	enabled = false
	l(critical())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, fake.count())
}
