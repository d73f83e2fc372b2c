package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/internal/preview"
	"github.com/thoreinstein/shotgun/internal/submit"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <draft>",
	Short: "Show how a draft will look on each platform",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runPreviewWithWriter(os.Stdout, args[0])
	},
}

func runPreviewWithWriter(w io.Writer, path string) error {
	d, keys, err := loadDraft(path)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return errors.NewUserError(errors.ErrNoPlatformSelected, "pass --platform or list platforms in the draft")
	}

	fillWebhook(d.Data, keys, loadedConfig())
	warnUnknown(w, d)
	if err := preview.NewRenderer(w, platform.Default()).Render(keys, d.Data); err != nil {
		return err
	}

	if errs := submit.New(nil).Check(submit.Request{Platforms: keys, Data: d.Data}); !errs.Empty() {
		fmt.Fprintf(w, "\n%s %d validation error(s); run: shotgun validate %s\n",
			color.YellowString("⚠"), errs.Count(), path)
	}
	return nil
}
