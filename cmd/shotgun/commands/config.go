package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/shotgun/internal/config"
	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/editor"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/internal/redact"
)

var configReveal bool

func init() {
	configGetCmd.Flags().BoolVar(&configReveal, "reveal", false, "print secrets unmasked")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage shotgun configuration",
	Long: `Manage shotgun configuration stored in $XDG_CONFIG_HOME/shotgun/config.yaml.

Without a subcommand, lists all configuration values with secrets masked.`,
	Example: `  # List all configuration
  shotgun config

  # Set default platforms
  shotgun config set default_platforms twitter,bluesky,discord

  # Store a Discord webhook
  shotgun config set credentials.discord.webhook_url https://discord.com/api/webhooks/...

See Also: shotgun doctor`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConfigListWithWriter(os.Stdout)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys. Array values are printed one per
line. Secrets are masked unless --reveal is given.`,
	Example: `  shotgun config get default_platforms
  shotgun config get credentials.bluesky.handle`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runConfigGetWithWriter(os.Stdout, args[0])
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

Keys:
  version                         config file version (1)
  default_platforms               comma-separated platform keys
  webhook_timeout                 duration such as 10s
  credentials.<platform>.<field>  api_key, api_secret, access_token,
                                  access_secret, webhook_url, handle,
                                  app_password, client_id, client_secret,
                                  username, password`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runConfigSetWithWriter(os.Stdout, args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format with secrets masked.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConfigListWithWriter(os.Stdout)
	},
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the configuration file path",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigCheck: "true"},
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(configPath())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses $EDITOR, then $VISUAL, then nano or vi. The file is created with
defaults if it does not exist yet.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigCheck: "true"},
	RunE:        runConfigEdit,
}

// configPath is the file config commands read and write.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	return config.Path()
}

func runConfigGetWithWriter(w io.Writer, key string) error {
	if !viper.IsSet(key) {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "config key %q", key),
			"run 'shotgun config list' to see configured keys")
	}

	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	case map[string]any:
		return errors.NewUserError(errors.Newf("%q is a section, not a value", key),
			"ask for a single key, e.g. "+key+".<field>")
	default:
		value := viper.GetString(key)
		if !configReveal {
			value = redact.MaskField(lastSegment(key), value)
		}
		fmt.Fprintln(w, value)
	}
	return nil
}

func runConfigSetWithWriter(w io.Writer, key, value string) error {
	c := loadedConfig()

	if err := config.Set(c, key, value); err != nil {
		return errors.NewUserError(err, "run 'shotgun config set --help' for valid keys")
	}
	if errs := config.Validate(c); len(errs) > 0 {
		return errors.NewConfigError(errs[0])
	}

	p := configPath()
	if err := config.Save(p, c); err != nil {
		return errors.NewSystemError(err, "check permissions on "+p)
	}

	fmt.Fprintf(w, "Set %s = %s in %s\n", key, redact.MaskField(lastSegment(key), value), p)
	return nil
}

func runConfigListWithWriter(w io.Writer) error {
	c := loadedConfig()

	masked := *c
	masked.Credentials = make(map[string]dispatch.Credentials, len(c.Credentials))
	for name, creds := range c.Credentials {
		masked.Credentials[name] = maskCredentials(creds)
	}

	fmt.Fprintf(w, "# %s\n", configPath())
	data, err := yaml.Marshal(&masked)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	if len(c.Env) == 0 {
		return nil
	}
	fmt.Fprintln(w, "# credentials from environment:")
	for _, key := range platform.Keys() {
		fields := c.Env[key].Fields()
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "#   %s%s=%s\n", config.EnvPrefixFor(key), strings.ToUpper(name), redact.MaskField(name, fields[name]))
		}
	}
	return nil
}

// lastSegment returns the final component of a dotted key.
func lastSegment(key string) string {
	return key[strings.LastIndex(key, ".")+1:]
}

func maskCredentials(creds dispatch.Credentials) dispatch.Credentials {
	var out dispatch.Credentials
	for name, v := range creds.Fields() {
		out.Set(name, redact.MaskField(name, v))
	}
	return out
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	p := configPath()
	if _, err := os.Stat(p); os.IsNotExist(err) {
		if err := config.Save(p, config.Default()); err != nil {
			return errors.NewSystemError(err, "check permissions on "+p)
		}
	}
	fmt.Printf("Location: %s\n", p)
	return editor.New().Open(p)
}
