package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/shotgun/internal/config"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// isolate points config at a temp dir, clears credential variables and
// restores every package-level flag when the test ends.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(config.ConfigDirEnv, dir)
	for _, key := range platform.Keys() {
		for _, suffix := range []string{"API_KEY", "API_SECRET", "ACCESS_TOKEN", "ACCESS_SECRET", "WEBHOOK_URL", "HANDLE", "APP_PASSWORD"} {
			t.Setenv(config.EnvPrefixFor(key)+suffix, "")
		}
	}

	origNoColor := color.NoColor
	origPlatforms, origConfigFile := platformFlag, configFile
	origCfg, origLoadErr := cfg, configLoadErr
	t.Cleanup(func() {
		color.NoColor = origNoColor
		platformFlag, configFile = origPlatforms, origConfigFile
		cfg, configLoadErr = origCfg, origLoadErr
		viper.Reset()
	})

	color.NoColor = true
	platformFlag = nil
	configFile = ""
	viper.Reset()
	config.Init()
	cfg, configLoadErr = config.Load("")
	require.NoError(t, configLoadErr)

	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPrintError(t *testing.T) {
	isolate(t)

	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
		},
		{
			name:     "user error with suggestion",
			err:      errors.NewUserError(errors.New("bad input"), "try again"),
			wantHint: "hint: try again",
		},
		{
			name:     "config error points at doctor",
			err:      errors.NewConfigError(errors.New("broken")),
			wantHint: "shotgun doctor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)

			out := buf.String()
			assert.Contains(t, out, "Error:")
			if tt.wantHint == "" {
				assert.NotContains(t, out, "hint:")
			} else {
				assert.Contains(t, out, tt.wantHint)
			}
		})
	}
}

func TestLoadDraft(t *testing.T) {
	dir := isolate(t)

	t.Run("missing file is a user error", func(t *testing.T) {
		_, _, err := loadDraft(filepath.Join(dir, "nope.md"))
		require.Error(t, err)
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	t.Run("missing attachment points at the field", func(t *testing.T) {
		path := writeFile(t, dir, "photo.yaml", "platforms: [instagram]\nimage: [absent.png]\n")
		_, _, err := loadDraft(path)
		require.Error(t, err)
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

		var ee *errors.ExitError
		require.True(t, errors.As(err, &ee))
		assert.NotContains(t, ee.Suggestion, "draft init")
		assert.Contains(t, ee.Suggestion, "relative to the draft")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "post.json", "{}")
		_, _, err := loadDraft(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))
	})

	t.Run("flag overrides draft platforms", func(t *testing.T) {
		path := writeFile(t, dir, "post.md", "---\nplatforms: [twitter]\n---\nhello\n")
		platformFlag = []string{"bluesky"}
		defer func() { platformFlag = nil }()

		_, keys, err := loadDraft(path)
		require.NoError(t, err)
		assert.Equal(t, []platform.Key{platform.Bluesky}, keys)
	})

	t.Run("draft platforms used without flag", func(t *testing.T) {
		path := writeFile(t, dir, "post2.md", "---\nplatforms: [twitter, discord]\n---\nhello\n")
		d, keys, err := loadDraft(path)
		require.NoError(t, err)
		assert.Equal(t, []platform.Key{platform.Twitter, platform.Discord}, keys)
		assert.Equal(t, "hello", d.Data.Text("text"))
	})
}

func TestWarnUnknown(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "post.md", "---\nplatforms: [twitter]\nmood: sunny\n---\nhello\n")

	d, _, err := loadDraft(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	warnUnknown(&buf, d)
	assert.Contains(t, buf.String(), `field "mood" is not used by any platform`)
}
