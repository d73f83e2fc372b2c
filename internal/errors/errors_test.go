package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":              {nil, ExitSuccess},
		"plain error":      {New("boom"), ExitSystem},
		"bare sentinel":    {ErrValidationFailed, ExitSystem},
		"user error":       {NewUserError(ErrValidationFailed, ""), ExitUser},
		"system error":     {NewSystemError(ErrPostFailed, ""), ExitSystem},
		"config error":     {NewConfigError(ErrInvalidConfig), ExitUser},
		"explicit code":    {NewExitErrorWithSuggestion(ErrNotFound, 7, ""), 7},
		"wrapped by crdb":  {Wrap(NewUserError(ErrNotFound, ""), "loading draft"), ExitUser},
		"wrapped by fmt":   {fmt.Errorf("post: %w", NewSystemError(ErrPostFailed, "")), ExitSystem},
		"success exit err": {&ExitError{Code: ExitSuccess}, ExitSuccess},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "not found", NewUserError(ErrNotFound, "x").Error())
	assert.Equal(t, "exit status 2", (&ExitError{Code: ExitSystem}).Error())
	assert.Equal(t, "reading draft: not found",
		NewUserError(Wrap(ErrNotFound, "reading draft"), "").Error())
}

func TestExitError_KeepsChain(t *testing.T) {
	inner := Wrapf(ErrUnknownPlatform, "key %q", "myspace")
	err := Wrap(NewUserError(inner, "see: shotgun platforms"), "resolving platforms")

	assert.True(t, Is(err, ErrUnknownPlatform))
	assert.False(t, Is(err, ErrNotFound))

	var ee *ExitError
	require.True(t, As(err, &ee))
	assert.Equal(t, ExitUser, ee.Code)
	assert.Equal(t, "see: shotgun platforms", ee.Suggestion)
	assert.Same(t, inner, ee.Unwrap())
}

func TestConstructors(t *testing.T) {
	user := NewUserError(ErrNoPlatformSelected, "pass --platform")
	assert.Equal(t, ExitUser, user.Code)
	assert.Equal(t, "pass --platform", user.Suggestion)

	sys := NewSystemError(ErrPostFailed, "retry later")
	assert.Equal(t, ExitSystem, sys.Code)
	assert.Equal(t, "retry later", sys.Suggestion)

	cfg := NewConfigError(ErrInvalidConfig)
	assert.Equal(t, ExitUser, cfg.Code)
	assert.Equal(t, "Run: shotgun doctor", cfg.Suggestion)
}

func TestMarkedErrorsMatchSentinel(t *testing.T) {
	err := Mark(New("default_platforms: unknown key"), ErrInvalidConfig)
	assert.True(t, Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "default_platforms")
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		ErrUnknownPlatform, ErrNoPlatformSelected, ErrValidationFailed,
		ErrPostFailed, ErrNotFound, ErrInvalidConfig, ErrUnsupportedFormat,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, Is(a, b), "%v matched %v", a, b)
			}
		}
	}
}
