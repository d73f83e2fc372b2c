package config

import (
	"sort"
	"strings"

	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrVersionUnsupported indicates a file written by a newer release.
	ErrVersionUnsupported = errors.New("unsupported config version")

	// ErrInvalidPlatform indicates an unrecognized platform name.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrNegativeTimeout indicates a webhook_timeout below zero.
	ErrNegativeTimeout = errors.New("must not be negative")

	// ErrInvalidWebhook indicates a Discord webhook URL without the webhook path.
	ErrInvalidWebhook = errors.New("not a Discord webhook URL")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	switch {
	case cfg.Version < 1:
		errs = append(errs, ErrVersionTooLow)
	case cfg.Version > CurrentVersion:
		errs = append(errs, errors.Wrapf(ErrVersionUnsupported, "%d", cfg.Version))
	}

	for _, name := range cfg.DefaultPlatforms {
		if _, err := platform.ParseKey(name); err != nil {
			errs = append(errs, &PlatformError{Platform: name, Err: ErrInvalidPlatform})
		}
	}

	if cfg.WebhookTimeout < 0 {
		errs = append(errs, &FieldError{
			Field: "webhook_timeout",
			Value: cfg.WebhookTimeout.String(),
			Err:   ErrNegativeTimeout,
		})
	}

	// Map iteration order is random; report in a stable order.
	names := make([]string, 0, len(cfg.Credentials))
	for name := range cfg.Credentials {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !platform.Key(name).Valid() {
			errs = append(errs, &PlatformError{Platform: name, Err: ErrInvalidPlatform})
			continue
		}
		url := cfg.Credentials[name].WebhookURL
		if platform.Key(name) == platform.Discord && url != "" && !strings.Contains(url, dispatch.DiscordWebhookPattern) {
			errs = append(errs, &FieldError{
				Field: "credentials.discord.webhook_url",
				Err:   ErrInvalidWebhook,
			})
		}
	}

	return errs
}

// PlatformError represents an error for a specific platform.
type PlatformError struct {
	Platform string
	Err      error
}

func (e *PlatformError) Error() string {
	return e.Err.Error() + ": " + e.Platform
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// FieldError represents an error for a specific config key. Value is
// omitted from the message when empty so secrets are never echoed.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
