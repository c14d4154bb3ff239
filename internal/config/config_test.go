package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{"APP_JWT_SECRET": "s"})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080/api", cfg.BackendBaseURL)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.Equal(t, DriverMemory, cfg.PrefsDriver)
	assert.Equal(t, AuthDemo, cfg.AuthMode)
	assert.Equal(t, 30*time.Second, cfg.DetectionInterval)
	assert.False(t, cfg.PushEnabled())
}

func TestOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"APP_JWT_SECRET":      "s",
		"PREFS_DRIVER":        "redis",
		"REDIS_URL":           "redis://localhost:6379/0",
		"AUTH_MODE":           "strict",
		"ADMIN_PASSWORD_HASH": "$2a$10$abc",
		"ADMIN_EMAILS":        "a@x.com,b@x.com",
		"DETECTION_INTERVAL":  "10s",
	})
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.PrefsDriver)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, cfg.AdminEmails)
	assert.Equal(t, 10*time.Second, cfg.DetectionInterval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"postgres without url", map[string]string{"APP_JWT_SECRET": "s", "PREFS_DRIVER": "postgres"}},
		{"redis without url", map[string]string{"APP_JWT_SECRET": "s", "PREFS_DRIVER": "redis"}},
		{"unknown driver", map[string]string{"APP_JWT_SECRET": "s", "PREFS_DRIVER": "bolt"}},
		{"strict without hash", map[string]string{"APP_JWT_SECRET": "s", "AUTH_MODE": "strict"}},
		{"unknown auth mode", map[string]string{"APP_JWT_SECRET": "s", "AUTH_MODE": "open"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.env)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
