package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/shotgun/cmd"
)

func TestPrintVersion(t *testing.T) {
	b := cmd.Build{Version: "v1.2.3", Commit: "abc1234", Date: "2026-01-02", Dirty: true}

	var buf bytes.Buffer
	require.NoError(t, printVersion(&buf, b, false))
	assert.Equal(t, "shotgun v1.2.3\n  commit: abc1234 (modified)\n  built:  2026-01-02\n", buf.String())

	buf.Reset()
	require.NoError(t, printVersion(&buf, b, true))
	var got cmd.Build
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, b, got)
}
