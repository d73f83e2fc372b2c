package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid: text, json")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_DefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN  shown")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelTrace, Format: FormatJSON, Output: &buf})

	logger.Log(t.Context(), LevelTrace, "webhook response", "status", 204, "access_token", "EAAsecretvalue")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "TRACE", rec["level"])
	assert.Equal(t, "webhook response", rec["msg"])
	assert.InDelta(t, 204, rec["status"], 0)
	assert.Equal(t, "****alue", rec["access_token"])
}

func TestNew_FileGetsJSONCopy(t *testing.T) {
	var term, file bytes.Buffer
	logger := New(Options{Level: slog.LevelInfo, Output: &term, File: &file}).With("submission", "abc")

	logger.Info("posted", "platform", "discord")
	logger.Debug("below level")

	assert.Contains(t, term.String(), "posted submission=abc platform=discord")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "abc", rec["submission"])
	assert.Equal(t, "discord", rec["platform"])
}

func TestTee_EnabledIfAnyHandlerIs(t *testing.T) {
	var a, b bytes.Buffer
	h := tee{
		newTextHandler(&a, slog.LevelError, false),
		newTextHandler(&b, slog.LevelDebug, false),
	}

	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, h.Enabled(t.Context(), LevelTrace))

	slog.New(h).WithGroup("req").Info("hello", "id", 7)
	assert.Empty(t, a.String())
	assert.Contains(t, b.String(), "hello req.id=7")
}
