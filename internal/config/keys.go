package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// ErrUnknownKey indicates a config key that Set does not recognize.
var ErrUnknownKey = errors.New("unknown config key")

// Set assigns value to the dotted config key. Supported keys are version,
// default_platforms (comma separated), webhook_timeout and
// credentials.<platform>.<field>.
func Set(cfg *Config, key, value string) error {
	switch key {
	case "version":
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "version must be an integer")
		}
		cfg.Version = v
		return nil

	case "default_platforms":
		keys, err := platform.ParseKeys(splitList(value))
		if err != nil {
			return err
		}
		cfg.DefaultPlatforms = make([]string, len(keys))
		for i, k := range keys {
			cfg.DefaultPlatforms[i] = k.String()
		}
		return nil

	case "webhook_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "webhook_timeout must be a duration like 10s")
		}
		if d < 0 {
			return &FieldError{Field: key, Value: value, Err: ErrNegativeTimeout}
		}
		cfg.WebhookTimeout = d
		return nil
	}

	parts := strings.Split(key, ".")
	if len(parts) != 3 || parts[0] != "credentials" {
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}

	k, err := platform.ParseKey(parts[1])
	if err != nil {
		return err
	}

	if cfg.Credentials == nil {
		cfg.Credentials = make(map[string]dispatch.Credentials)
	}
	creds := cfg.Credentials[k.String()]
	if !creds.Set(parts[2], value) {
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}
	if k == platform.Discord && parts[2] == "webhook_url" && value != "" &&
		!strings.Contains(value, dispatch.DiscordWebhookPattern) {
		return &FieldError{Field: key, Err: ErrInvalidWebhook}
	}
	cfg.Credentials[k.String()] = creds
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
