package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/internal/config"
	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

var platformsJSON bool

func init() {
	platformsCmd.PersistentFlags().BoolVar(&platformsJSON, "json", false, "Output in JSON format")
	platformsCmd.AddCommand(platformsShowCmd)
	rootCmd.AddCommand(platformsCmd)
}

var platformsCmd = &cobra.Command{
	Use:     "platforms",
	Aliases: []string{"platform", "ls"},
	Short:   "List supported platforms",
	Long: `List every supported platform with its fields, adapter status and
whether its credentials are configured.

Examples:
  # List platforms
  shotgun platforms

  # Output as JSON
  shotgun platforms --json`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runPlatformsWithWriter(os.Stdout)
	},
}

var platformsShowCmd = &cobra.Command{
	Use:   "show <platform>",
	Short: "Show a platform's fields, limits and credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runPlatformsShowWithWriter(os.Stdout, args[0])
	},
}

// fieldJSON is one platform field in JSON output.
type fieldJSON struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Required    bool   `json:"required"`
	MaxLength   int    `json:"maxLength,omitempty"`
	MaxFiles    int    `json:"maxFiles,omitempty"`
	Accept      string `json:"accept,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Label       string `json:"label,omitempty"`
}

// platformJSON is one platform in JSON output.
type platformJSON struct {
	Key                 platform.Key `json:"key"`
	Name                string       `json:"name"`
	Icon                string       `json:"icon"`
	Color               string       `json:"color"`
	Fields              []fieldJSON  `json:"fields"`
	Notes               string       `json:"notes,omitempty"`
	Implemented         bool         `json:"implemented"`
	CredentialsRequired []string     `json:"credentialsRequired,omitempty"`
	CredentialsReady    bool         `json:"credentialsReady"`
}

func toFieldJSON(f platform.Field) fieldJSON {
	out := fieldJSON{
		Name:     f.Name,
		Kind:     f.Config.Kind().String(),
		Required: f.Config.IsRequired(),
	}
	switch c := f.Config.(type) {
	case platform.TextField:
		out.MaxLength = c.MaxLength
		out.Placeholder = c.Placeholder
	case platform.FileField:
		out.MaxFiles = c.MaxFiles
		out.Accept = c.Accept
	case platform.BooleanField:
		out.Label = c.Label
	}
	return out
}

func toPlatformJSON(p *platform.Config, c *config.Config) platformJSON {
	out := platformJSON{
		Key:                 p.Key,
		Name:                p.Name,
		Icon:                p.Icon,
		Color:               p.Color,
		Notes:               p.Notes,
		Implemented:         dispatch.Implemented(p.Key),
		CredentialsRequired: dispatch.RequiredCredentials(p.Key),
		CredentialsReady:    credentialsReady(p.Key, c),
	}
	for _, f := range p.Fields {
		out.Fields = append(out.Fields, toFieldJSON(f))
	}
	return out
}

// credentialsReady reports whether the platform's adapter accepts its
// resolved credentials.
func credentialsReady(key platform.Key, c *config.Config) bool {
	a, err := dispatch.New(key, c.CredentialsFor(key))
	return err == nil && a.ValidateCredentials()
}

func runPlatformsWithWriter(w io.Writer) error {
	reg := platform.Default()
	c := loadedConfig()

	if platformsJSON {
		out := make([]platformJSON, 0, len(reg.AllKeys()))
		for _, p := range reg.All() {
			out = append(out, toPlatformJSON(p, c))
		}
		return writeJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tFIELDS\tADAPTER\tCREDENTIALS")
	for _, p := range reg.All() {
		adapter := "not implemented"
		creds := "-"
		if dispatch.Implemented(p.Key) {
			adapter = "ready"
			creds = color.YellowString("missing")
			if credentialsReady(p.Key, c) {
				creds = color.GreenString("ok")
			}
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\n",
			p.Key, p.Icon, p.Name, strings.Join(p.FieldNames(), ", "), adapter, creds)
	}
	return tw.Flush()
}

func runPlatformsShowWithWriter(w io.Writer, name string) error {
	key, err := platform.ParseKey(name)
	if err != nil {
		return errors.NewUserError(err, "Run 'shotgun platforms' to see valid platforms")
	}
	p := platform.Default().MustGet(key)
	conf := loadedConfig()

	if platformsJSON {
		return writeJSON(w, toPlatformJSON(p, conf))
	}

	fmt.Fprintf(w, "%s %s (%s)\n", p.Icon, color.New(color.Bold).Sprint(p.Name), p.Key)
	if p.Notes != "" {
		fmt.Fprintf(w, "%s\n", p.Notes)
	}

	fmt.Fprintln(w, "\nFields:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range p.Fields {
		hint := ""
		switch fc := f.Config.(type) {
		case platform.TextField:
			hint = fc.Placeholder
		case platform.BooleanField:
			hint = fc.Label
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, platform.Describe(f.Config), hint)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nCredentials:")
	if !dispatch.Implemented(key) {
		fmt.Fprintln(w, "  integration is not yet implemented; posts will fail")
		return nil
	}
	resolved := conf.CredentialsFor(key).Fields()
	for _, field := range dispatch.RequiredCredentials(key) {
		state := color.YellowString("missing")
		if resolved[field] != "" {
			state = color.GreenString("set")
		}
		fmt.Fprintf(w, "  credentials.%s.%s (%s%s): %s\n",
			key, field, config.EnvPrefixFor(key), strings.ToUpper(field), state)
	}
	return nil
}
