package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr []error
	}{
		{
			name: "defaults are valid",
			cfg:  Default(),
		},
		{
			name: "full valid config",
			cfg: &Config{
				Version:          1,
				DefaultPlatforms: []string{"twitter", "Discord"},
				Credentials: map[string]dispatch.Credentials{
					"discord": {WebhookURL: "https://discord.com/api/webhooks/1/x"},
				},
			},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: []error{nil},
		},
		{
			name:    "version too low",
			cfg:     &Config{Version: 0},
			wantErr: []error{ErrVersionTooLow},
		},
		{
			name:    "version from the future",
			cfg:     &Config{Version: 2},
			wantErr: []error{ErrVersionUnsupported},
		},
		{
			name:    "unknown default platform",
			cfg:     &Config{Version: 1, DefaultPlatforms: []string{"twitter", "myspace"}},
			wantErr: []error{ErrInvalidPlatform},
		},
		{
			name:    "negative timeout",
			cfg:     &Config{Version: 1, WebhookTimeout: -1},
			wantErr: []error{ErrNegativeTimeout},
		},
		{
			name: "credentials for unknown platform and bad webhook",
			cfg: &Config{
				Version: 1,
				Credentials: map[string]dispatch.Credentials{
					"discord": {WebhookURL: "https://example.com/hook"},
					"orkut":   {APIKey: "x"},
				},
			},
			wantErr: []error{ErrInvalidWebhook, ErrInvalidPlatform},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			require.Len(t, errs, len(tt.wantErr))
			for i, want := range tt.wantErr {
				if want != nil {
					assert.True(t, errors.Is(errs[i], want), "error %d: %v", i, errs[i])
				}
			}
		})
	}
}

func TestFieldError_HidesEmptyValue(t *testing.T) {
	err := &FieldError{Field: "credentials.discord.webhook_url", Err: ErrInvalidWebhook}
	assert.Equal(t, "credentials.discord.webhook_url: not a Discord webhook URL", err.Error())

	err = &FieldError{Field: "webhook_timeout", Value: "-1s", Err: ErrNegativeTimeout}
	assert.Equal(t, "webhook_timeout: must not be negative: -1s", err.Error())
}

func TestPlatformError(t *testing.T) {
	err := &PlatformError{Platform: "myspace", Err: ErrInvalidPlatform}
	assert.Equal(t, "invalid platform: myspace", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidPlatform))
}
