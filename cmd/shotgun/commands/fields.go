package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/internal/cli"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/platform"
)

var fieldsJSON bool

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(fieldsCmd)
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Show the merged form for the selected platforms",
	Long: `Show the fields needed to post to the selected platforms, merged into
one form. A field is required if any selected platform requires it, and
its limit is the strictest among the platforms that use it.

Examples:
  shotgun fields -p twitter,bluesky,discord
  shotgun fields -p instagram --json`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runFieldsWithWriter(os.Stdout)
	},
}

// mergedFieldJSON is one merged field in JSON output.
type mergedFieldJSON struct {
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Group     string         `json:"group"`
	Required  bool           `json:"required"`
	MaxLength int            `json:"maxLength,omitempty"`
	MaxFiles  int            `json:"maxFiles,omitempty"`
	Platforms []platform.Key `json:"platforms"`
}

func runFieldsWithWriter(w io.Writer) error {
	selected, _, err := cli.ResolvePlatforms(platformFlag, nil, loadedConfig().DefaultPlatforms)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return errors.NewUserError(errors.ErrNoPlatformSelected, "pass --platform or set default_platforms")
	}

	merged := form.Merge(platform.Default(), selected)

	if fieldsJSON {
		out := make([]mergedFieldJSON, len(merged))
		for i, f := range merged {
			out[i] = mergedFieldJSON{
				Name:      f.Name,
				Kind:      f.Kind.String(),
				Group:     f.Group().String(),
				Required:  f.Required,
				MaxLength: f.MaxLength,
				MaxFiles:  f.MaxFiles,
				Platforms: f.Platforms,
			}
		}
		return writeJSON(w, out)
	}

	for i, section := range form.ByGroup(merged) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, color.New(color.Bold).Sprint(section.Group.String()))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, f := range section.Fields {
			var limits []string
			if f.Required {
				limits = append(limits, color.RedString("required"))
			}
			if f.HasMaxLength() {
				limits = append(limits, fmt.Sprintf("max %d chars", f.MaxLength))
			}
			if f.MaxFiles > 0 {
				limits = append(limits, fmt.Sprintf("max %d files", f.MaxFiles))
			}
			keys := make([]string, len(f.Platforms))
			for j, k := range f.Platforms {
				keys[j] = string(k)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, strings.Join(limits, ", "), strings.Join(keys, ", "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
