package config

import (
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// Settings holds process-wide switches read from the environment.
type Settings struct {
	// Debug raises verbosity when no -v flag is given: "1" or "true" for
	// debug, "2" for trace.
	Debug     string `env:"SHOTGUN_DEBUG"`
	LogFormat string `env:"SHOTGUN_LOG_FORMAT"`
}

// Verbosity converts Debug into the equivalent -v count.
func (s Settings) Verbosity() int {
	switch strings.ToLower(strings.TrimSpace(s.Debug)) {
	case "1", "true":
		return 2
	case "2":
		return 3
	default:
		return 0
	}
}

// LoadSettings reads Settings from environ, or the process environment
// when environ is nil.
func LoadSettings(environ map[string]string) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return Settings{}, errors.Wrap(err, "parsing environment")
	}
	return s, nil
}

// EnvPrefixFor returns the variable prefix for a platform's credentials,
// e.g. "DISCORD_" for DISCORD_WEBHOOK_URL.
func EnvPrefixFor(key platform.Key) string {
	return strings.ToUpper(string(key)) + "_"
}

// EnvCredentials reads credential defaults for every platform from environ,
// or the process environment when environ is nil. Platforms with no
// variables set are omitted.
func EnvCredentials(environ map[string]string) (map[platform.Key]dispatch.Credentials, error) {
	out := make(map[platform.Key]dispatch.Credentials)
	for _, key := range platform.Keys() {
		var creds dispatch.Credentials
		opts := env.Options{
			Prefix:      EnvPrefixFor(key),
			Environment: environ,
		}
		if err := env.ParseWithOptions(&creds, opts); err != nil {
			return nil, errors.Wrapf(err, "reading %s credentials from environment", key)
		}
		if creds != (dispatch.Credentials{}) {
			out[key] = creds
		}
	}
	return out, nil
}
