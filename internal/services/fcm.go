package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"ecokosova-dashboard/internal/notifications"
)

// sender is the part of *messaging.Client the service uses
type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMService pushes critical-container alerts to a Firebase topic that
// field crews' devices subscribe to
type FCMService struct {
	client sender
	topic  string
}

// NewFCMService creates a new FCM service instance from a credentials file
func NewFCMService(ctx context.Context, credentialsFile, topic string) (*FCMService, error) {
	return newFCMService(ctx, topic, option.WithCredentialsFile(credentialsFile))
}

// NewFCMServiceFromBase64 creates a new FCM service instance from base64-encoded credentials
// This is useful for cloud deployments where you can't upload files easily
func NewFCMServiceFromBase64(ctx context.Context, credentialsBase64, topic string) (*FCMService, error) {
	credentialsJSON, err := base64.StdEncoding.DecodeString(credentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 credentials: %w", err)
	}
	return newFCMService(ctx, topic, option.WithCredentialsJSON(credentialsJSON))
}

func newFCMService(ctx context.Context, topic string, opt option.ClientOption) (*FCMService, error) {
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return &FCMService{client: client, topic: topic}, nil
}

// CriticalAlertMessage builds the topic message for one notification
func CriticalAlertMessage(topic string, n notifications.Notification) *messaging.Message {
	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"type":            string(n.Type),
			"notification_id": n.ID,
			"container_id":    n.ContainerID,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					ContentAvailable: true,
					Sound:            "default",
				},
			},
		},
	}
}

// SendCriticalAlert pushes n to the configured topic
func (s *FCMService) SendCriticalAlert(ctx context.Context, n notifications.Notification) error {
	response, err := s.client.Send(ctx, CriticalAlertMessage(s.topic, n))
	if err != nil {
		return fmt.Errorf("error sending FCM message: %w", err)
	}

	log.Printf("✅ FCM critical alert sent for %s: %s", n.ContainerID, response)
	return nil
}

// Listener returns a notifications.Listener that pushes critical entries in
// the background. enabled is checked per notification.
func (s *FCMService) Listener(ctx context.Context, enabled func() bool) notifications.Listener {
	return func(n notifications.Notification) {
		if n.Type != notifications.TypeCritical || (enabled != nil && !enabled()) {
			return
		}
		go func() {
			if err := s.SendCriticalAlert(ctx, n); err != nil {
				log.Printf("⚠️  %v", err)
			}
		}()
	}
}
