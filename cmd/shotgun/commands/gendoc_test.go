package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenDoc(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	var buf bytes.Buffer
	require.NoError(t, runGenDoc(&buf, dir))
	assert.Contains(t, buf.String(), dir)

	data, err := os.ReadFile(filepath.Join(dir, "shotgun_config_set.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `title: "shotgun config set"`)
}

func TestRunGenDoc_RequiresDir(t *testing.T) {
	require.Error(t, runGenDoc(&bytes.Buffer{}, ""))
}

func TestDocFrontmatter(t *testing.T) {
	got := docFrontmatter("/tmp/docs/shotgun_draft_init.md")
	assert.Contains(t, got, `title: "shotgun draft init"`)
	assert.Contains(t, got, "Reference for shotgun draft init")
}
