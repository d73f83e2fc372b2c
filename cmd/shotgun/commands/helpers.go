package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/shotgun/internal/cli"
	"github.com/thoreinstein/shotgun/internal/config"
	"github.com/thoreinstein/shotgun/internal/draft"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// PrintError writes err and any suggestion it carries to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s %s\n", color.New(color.Faint).Sprint("hint:"), exitErr.Suggestion)
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

// loadDraft reads the draft at path and resolves its target platforms.
// A missing draft file is a user error.
func loadDraft(path string) (*draft.Draft, []platform.Key, error) {
	d, err := draft.Load(path)
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrInvalidField):
			return nil, nil, errors.NewUserError(err, "fix the fields listed above; attachment paths are relative to the draft")
		case errors.Is(err, errors.ErrNotFound):
			return nil, nil, errors.NewUserError(err, "check the draft path, or create one with: shotgun draft init "+path)
		case errors.Is(err, errors.ErrUnsupportedFormat):
			return nil, nil, errors.NewUserError(err, "drafts are .md, .yaml or .toml files")
		default:
			return nil, nil, errors.NewUserError(err, "fix the draft file and try again")
		}
	}

	keys, _, err := cli.ResolvePlatforms(platformFlag, d.Platforms, loadedConfig().DefaultPlatforms)
	if err != nil {
		return nil, nil, err
	}
	return d, keys, nil
}

// warnUnknown tells the user about draft fields no platform declares.
func warnUnknown(w io.Writer, d *draft.Draft) {
	for _, name := range d.Unknown {
		fmt.Fprintf(w, "%s field %q is not used by any platform and will be ignored\n",
			color.YellowString("warning:"), name)
	}
}

// fillWebhook copies the configured Discord webhook into data when Discord
// is selected and the draft leaves webhookUrl blank. A URL in the draft
// always wins.
func fillWebhook(data form.Data, keys []platform.Key, c *config.Config) {
	if !platform.NewSelection(keys...).Contains(platform.Discord) || data.Present("webhookUrl") {
		return
	}
	if hook := c.CredentialsFor(platform.Discord).WebhookURL; hook != "" {
		data["webhookUrl"] = form.Text(hook)
	}
}
