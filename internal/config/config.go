package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/paths"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/pkg/fileutil"
)

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// EnvPrefix prefixes environment overrides of config keys.
const EnvPrefix = "SHOTGUN"

// ConfigDirEnv overrides the directory searched for the config file.
const ConfigDirEnv = EnvPrefix + "_CONFIG_DIR"

// CurrentVersion is the only config file version understood.
const CurrentVersion = 1

// DefaultWebhookTimeout bounds webhook calls when the file does not say otherwise.
const DefaultWebhookTimeout = dispatch.DefaultTimeout

// Config represents the top-level configuration structure.
type Config struct {
	Version          int                             `mapstructure:"version" yaml:"version"`
	DefaultPlatforms []string                        `mapstructure:"default_platforms" yaml:"default_platforms,omitempty"`
	WebhookTimeout   time.Duration                   `mapstructure:"webhook_timeout" yaml:"webhook_timeout,omitempty"`
	Credentials      map[string]dispatch.Credentials `mapstructure:"credentials" yaml:"credentials,omitempty"`

	// Env holds credentials sourced from the environment. It is filled by
	// Load and never written back to the file.
	Env map[platform.Key]dispatch.Credentials `mapstructure:"-" yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:        CurrentVersion,
		WebhookTimeout: DefaultWebhookTimeout,
	}
}

// Init resets Viper and registers search paths, env overrides and defaults.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, filepath.Ext(paths.ConfigFileName)))
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("webhook_timeout", DefaultWebhookTimeout.String())
}

// Dir returns the directory holding the user config file.
func Dir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return paths.ConfigDir()
}

// Path returns the config file in use, or where one would be created.
func Path() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(Dir(), paths.ConfigFileName)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file is found.
// The result is validated; environment credentials are attached to Env.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
		// No file in the search paths; defaults apply.
	}

	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	env, err := EnvCredentials(nil)
	if err != nil {
		return nil, err
	}
	cfg.Env = env

	return cfg, nil
}

// Save writes cfg to path atomically, creating the directory if needed.
// The file is private to the user since it may hold credentials.
func Save(path string, cfg *Config) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.WriteYAML(path, cfg, 0o600); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

// Platforms returns the default platforms as keys.
func (c *Config) Platforms() ([]platform.Key, error) {
	return platform.ParseKeys(c.DefaultPlatforms)
}

// CredentialsFor resolves credentials for key: file values first, then
// the environment, then empty.
func (c *Config) CredentialsFor(key platform.Key) dispatch.Credentials {
	file := c.Credentials[string(key)]
	return file.WithDefaults(c.Env[key])
}

// AllCredentials resolves credentials for every built-in platform.
func (c *Config) AllCredentials() map[platform.Key]dispatch.Credentials {
	out := make(map[platform.Key]dispatch.Credentials, len(platform.Keys()))
	for _, key := range platform.Keys() {
		out[key] = c.CredentialsFor(key)
	}
	return out
}

// MarshalYAML writes the timeout as a duration string rather than nanoseconds.
func (c *Config) MarshalYAML() (any, error) {
	out := struct {
		Version          int                             `yaml:"version"`
		DefaultPlatforms []string                        `yaml:"default_platforms,omitempty"`
		WebhookTimeout   string                          `yaml:"webhook_timeout,omitempty"`
		Credentials      map[string]dispatch.Credentials `yaml:"credentials,omitempty"`
	}{
		Version:          c.Version,
		DefaultPlatforms: c.DefaultPlatforms,
		Credentials:      c.Credentials,
	}
	if c.WebhookTimeout > 0 {
		out.WebhookTimeout = c.WebhookTimeout.String()
	}
	return out, nil
}

// Timeout returns the webhook timeout, or the default when unset.
func (c *Config) Timeout() time.Duration {
	if c.WebhookTimeout <= 0 {
		return DefaultWebhookTimeout
	}
	return c.WebhookTimeout
}
