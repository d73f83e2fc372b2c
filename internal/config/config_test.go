package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// isolate points the config search at an empty temp dir and clears
// credential variables that may be set on the machine running the tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)
	for _, key := range platform.Keys() {
		for _, suffix := range []string{"API_KEY", "ACCESS_TOKEN", "WEBHOOK_URL", "HANDLE", "APP_PASSWORD"} {
			t.Setenv(EnvPrefixFor(key)+suffix, "")
		}
	}
	viper.Reset()
	Init()
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit(t *testing.T) {
	isolate(t)

	assert.Equal(t, 1, viper.GetInt("version"))
	assert.Equal(t, 10*time.Second, viper.GetDuration("webhook_timeout"))
}

func TestInit_ClearsPreviousState(t *testing.T) {
	viper.Set("default_platforms", []string{"twitter"})

	isolate(t)

	assert.Empty(t, viper.GetStringSlice("default_platforms"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultWebhookTimeout, cfg.Timeout())
	assert.Empty(t, cfg.DefaultPlatforms)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `version: 1
default_platforms: [twitter, bluesky]
webhook_timeout: 3s
credentials:
  discord:
    webhook_url: https://discord.com/api/webhooks/1/abc
  bluesky:
    handle: alice.bsky.social
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	keys, err := cfg.Platforms()
	require.NoError(t, err)
	assert.Equal(t, []platform.Key{platform.Twitter, platform.Bluesky}, keys)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", cfg.CredentialsFor(platform.Discord).WebhookURL)
	assert.Equal(t, "alice.bsky.social", cfg.CredentialsFor(platform.Bluesky).Handle)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "default_platforms: [reddit]\n")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"reddit"}, cfg.DefaultPlatforms)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), Path())
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)

	_, err := Load("/non/existent/path/config.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "default_platforms: [myspace]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "myspace")
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SHOTGUN_WEBHOOK_TIMEOUT", "45s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Timeout())
}

func TestCredentialsFor_Precedence(t *testing.T) {
	dir := isolate(t)
	t.Setenv("FACEBOOK_ACCESS_TOKEN", "EAA-from-env")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/9/env")
	path := writeConfig(t, dir, `credentials:
  discord:
    webhook_url: https://discord.com/api/webhooks/1/file
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://discord.com/api/webhooks/1/file", cfg.CredentialsFor(platform.Discord).WebhookURL,
		"file value wins over env")
	assert.Equal(t, "EAA-from-env", cfg.CredentialsFor(platform.Facebook).AccessToken,
		"env fills what the file omits")
	assert.Empty(t, cfg.CredentialsFor(platform.Twitter).APIKey)

	all := cfg.AllCredentials()
	assert.Len(t, all, len(platform.Keys()))
}

func TestSaveAndReload(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	require.NoError(t, Set(cfg, "default_platforms", "discord, twitter"))
	require.NoError(t, Set(cfg, "webhook_timeout", "15s"))
	require.NoError(t, Set(cfg, "credentials.discord.webhook_url", "https://discord.com/api/webhooks/1/abc"))
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "webhook_timeout: 15s")
	assert.NotContains(t, string(data), "Env")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	viper.Reset()
	Init()
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"discord", "twitter"}, loaded.DefaultPlatforms)
	assert.Equal(t, 15*time.Second, loaded.WebhookTimeout)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", loaded.Credentials["discord"].WebhookURL)
}
