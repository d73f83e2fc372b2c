package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/internal/cli"
	"github.com/thoreinstein/shotgun/internal/draft"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/pkg/fileutil"
)

var draftInitForce bool

func init() {
	draftInitCmd.Flags().BoolVarP(&draftInitForce, "force", "f", false, "overwrite an existing file")
	draftCmd.AddCommand(draftInitCmd)
	rootCmd.AddCommand(draftCmd)
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Work with draft files",
	Long: `Drafts hold one post: its target platforms and every field value.

Markdown drafts keep fields in YAML frontmatter and the post text in the
body. YAML and TOML drafts are flat documents with a "platforms" list and
a "text" field. Attachments are paths relative to the draft.`,
}

var draftInitCmd = &cobra.Command{
	Use:   "init <file.md>",
	Short: "Create a Markdown draft for the selected platforms",
	Long: `Create a Markdown draft whose frontmatter lists every field the
selected platforms use, annotated with the merged limits.`,
	Example: `  shotgun draft init launch.md -p twitter,instagram,discord`,
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runDraftInitWithWriter(os.Stdout, args[0])
	},
}

func runDraftInitWithWriter(w io.Writer, path string) error {
	if format, err := draft.FormatFor(path); err != nil || format != draft.FormatMarkdown {
		return errors.NewUserError(errors.Wrapf(errors.ErrUnsupportedFormat, "%q", path),
			"draft templates are Markdown; use a .md file name")
	}

	keys, _, err := cli.ResolvePlatforms(platformFlag, nil, loadedConfig().DefaultPlatforms)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return errors.NewUserError(errors.ErrNoPlatformSelected, "pass --platform, e.g. -p twitter,discord")
	}

	if !draftInitForce {
		if _, err := os.Stat(path); err == nil {
			return errors.NewUserError(errors.Newf("%s already exists", path), "use --force to overwrite it")
		}
	}

	content, err := draft.Template(platform.Default(), keys)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, content, 0o644); err != nil {
		return errors.NewSystemError(err, "check that the directory exists and is writable")
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	fmt.Fprintf(w, "Created %s for %s\n", path, strings.Join(names, ", "))
	return nil
}
