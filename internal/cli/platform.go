// Package cli provides CLI-specific helpers shared by shotgun's commands.
package cli

import (
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// Source names where a platform selection came from.
type Source string

// Selection sources, from highest to lowest precedence.
const (
	SourceFlag   Source = "flag"
	SourceDraft  Source = "draft"
	SourceConfig Source = "config"
	SourceNone   Source = "none"
)

// ResolvePlatforms picks the platforms to post to. The --platform flag
// wins, then the draft's own platforms list, then the configured
// defaults. Each level is parsed and deduplicated in first-seen order.
// An empty result is not an error here; submission rejects it with
// ErrNoPlatformSelected.
func ResolvePlatforms(flag []string, fromDraft []platform.Key, defaults []string) ([]platform.Key, Source, error) {
	switch {
	case len(flag) > 0:
		keys, err := platform.ParseKeys(flag)
		if err != nil {
			return nil, SourceFlag, errors.NewUserError(err, "Run 'shotgun platforms' to see valid platforms")
		}
		return platform.NewSelection(keys...).Keys(), SourceFlag, nil

	case len(fromDraft) > 0:
		return platform.NewSelection(fromDraft...).Keys(), SourceDraft, nil

	case len(defaults) > 0:
		keys, err := platform.ParseKeys(defaults)
		if err != nil {
			return nil, SourceConfig, errors.NewConfigError(err)
		}
		return platform.NewSelection(keys...).Keys(), SourceConfig, nil
	}
	return nil, SourceNone, nil
}
