package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/shotgun/internal/draft"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

func TestRunDraftInit(t *testing.T) {
	dir := isolate(t)
	origForce := draftInitForce
	t.Cleanup(func() { draftInitForce = origForce })
	draftInitForce = false

	t.Run("creates a loadable template", func(t *testing.T) {
		platformFlag = []string{"twitter", "discord"}
		path := filepath.Join(dir, "launch.md")

		var buf bytes.Buffer
		require.NoError(t, runDraftInitWithWriter(&buf, path))
		assert.Contains(t, buf.String(), "Created "+path+" for twitter, discord")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "platforms: [twitter, discord]")
		assert.Contains(t, string(data), "webhookUrl:")

		d, err := draft.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []platform.Key{platform.Twitter, platform.Discord}, d.Platforms)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		platformFlag = []string{"twitter"}
		path := writeFile(t, dir, "exists.md", "keep me")

		err := runDraftInitWithWriter(&bytes.Buffer{}, path)
		require.Error(t, err)
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

		data, _ := os.ReadFile(path)
		assert.Equal(t, "keep me", string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		platformFlag = []string{"twitter"}
		draftInitForce = true
		defer func() { draftInitForce = false }()
		path := writeFile(t, dir, "forced.md", "old")

		require.NoError(t, runDraftInitWithWriter(&bytes.Buffer{}, path))
		data, _ := os.ReadFile(path)
		assert.Contains(t, string(data), "platforms: [twitter]")
	})

	t.Run("markdown only", func(t *testing.T) {
		platformFlag = []string{"twitter"}
		err := runDraftInitWithWriter(&bytes.Buffer{}, filepath.Join(dir, "post.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))
	})

	t.Run("needs a platform", func(t *testing.T) {
		platformFlag = nil
		err := runDraftInitWithWriter(&bytes.Buffer{}, filepath.Join(dir, "none.md"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNoPlatformSelected))
	})

	t.Run("falls back to config defaults", func(t *testing.T) {
		platformFlag = nil
		cfg.DefaultPlatforms = []string{"bluesky"}
		defer func() { cfg.DefaultPlatforms = nil }()

		path := filepath.Join(dir, "defaults.md")
		require.NoError(t, runDraftInitWithWriter(&bytes.Buffer{}, path))
		data, _ := os.ReadFile(path)
		assert.Contains(t, string(data), "platforms: [bluesky]")
	})
}
