package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/cmd"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version, commit and build date",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return printVersion(c.OutOrStdout(), cmd.BuildInfo(), versionJSON)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer, b cmd.Build, asJSON bool) error {
	if asJSON {
		return writeJSON(w, b)
	}
	dirty := ""
	if b.Dirty {
		dirty = " (modified)"
	}
	_, err := fmt.Fprintf(w, "shotgun %s\n  commit: %s%s\n  built:  %s\n", b.Version, b.Commit, dirty, b.Date)
	return err
}
