package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

func TestSelectPlatforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		current []platform.Key
		want    []platform.Key
		wantErr error
	}{
		{
			name:  "numbers",
			input: "3,8\n",
			want:  []platform.Key{platform.Twitter, platform.Discord},
		},
		{
			name:  "keys and numbers mixed with spaces",
			input: "bluesky 1\n",
			want:  []platform.Key{platform.Bluesky, platform.Facebook},
		},
		{
			name:    "toggle removes current",
			input:   "twitter, reddit\n",
			current: []platform.Key{platform.Twitter, platform.Discord},
			want:    []platform.Key{platform.Discord, platform.Reddit},
		},
		{
			name:    "empty keeps current",
			input:   "\n",
			current: []platform.Key{platform.Threads},
			want:    []platform.Key{platform.Threads},
		},
		{
			name:  "no trailing newline",
			input: "2",
			want:  []platform.Key{platform.Instagram},
		},
		{name: "out of range", input: "9\n", wantErr: ErrInvalidSelection},
		{name: "unknown key", input: "myspace\n", wantErr: ErrInvalidSelection},
		{name: "eof", input: "", wantErr: ErrSelectionCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &out)

			got, err := s.SelectPlatforms(platform.Default(), platform.NewSelection(tt.current...))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Keys())
		})
	}
}

func TestSelectPlatforms_ShowsCurrentState(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader("\n"), &out)

	_, err := s.SelectPlatforms(platform.Default(), platform.NewSelection(platform.Discord))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[x] 8.")
	assert.Contains(t, out.String(), "[ ] 1.")
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		def     bool
		want    bool
		wantErr error
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", def: true, want: false},
		{input: "\n", def: true, want: true},
		{input: "\n", def: false, want: false},
		{input: "maybe\n", wantErr: ErrInvalidSelection},
		{input: "", wantErr: ErrSelectionCancelled},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := NewSelectorWithIO(strings.NewReader(tt.input), &out).Confirm("Post?", tt.def)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(out.String(), "Post? ["))
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	out := describe(platform.Default().MustGet(platform.Twitter))

	assert.Contains(t, out, "Twitter / X")
	assert.Contains(t, out, "text, required, max 280 chars")
	assert.Contains(t, out, "Max 280 characters per tweet")
}
