// Package commands implements the CLI commands for shotgun.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/cmd"
	"github.com/thoreinstein/shotgun/internal/config"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/logging"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// Persistent flags.
var (
	platformFlag []string
	verbosity    int
	quiet        bool
	logFormat    string
	logFile      string
	configFile   string
)

// cfg is loaded once per invocation. configLoadErr is reported by
// checkConfig unless the command opts out with skipConfigCheck.
var (
	cfg           *config.Config
	configLoadErr error
)

// skipConfigCheck marks commands that must run even when the config file
// is broken, so the user can diagnose or repair it.
const skipConfigCheck = "skip-config-check"

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringSliceVarP(&platformFlag, "platform", "p", nil,
		"platforms to target, comma separated ("+strings.Join(platform.KeyStrings(), ", ")+")")
	pf.CountVarP(&verbosity, "verbose", "v", "more log output; repeat for debug (-vv) and trace (-vvv)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&logFormat, "log-format", "text", "stderr log format (text or json)")
	pf.StringVar(&logFile, "log-file", "", "also append JSON logs to this file")
	pf.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/shotgun/config.yaml)")

	rootCmd.Version = cmd.BuildInfo().Version
	rootCmd.SetVersionTemplate("shotgun {{.Version}}\n")
	// main prints errors itself, with suggestions.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

// loadedConfig returns the loaded configuration, or defaults when none
// was loaded (e.g. when a run function is called directly).
func loadedConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "shotgun",
	Short: "Compose one post and publish it to many social platforms",
	Long: `shotgun composes a single post and fans it out to several social
platforms at once: Facebook, Instagram, Twitter / X, Threads, Bluesky,
Reddit, TikTok and Discord.

Each platform declares its own fields and limits. shotgun merges them into
one form, validates the post against every selected platform and only
posts when all of them accept it.

Posts are written as draft files (Markdown with frontmatter, YAML or
TOML). Platforms come from --platform, then the draft's "platforms" list,
then default_platforms in the config file.`,
	Example: `  # Start a draft for two platforms
  shotgun draft init hello.md -p twitter,discord

  # Check it against every platform's rules
  shotgun validate hello.md

  # Preview and post
  shotgun post hello.md

  See Also: shotgun platforms, shotgun doctor, shotgun config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging installs the process logger. -v/-q win over SHOTGUN_DEBUG,
// and --log-format wins over SHOTGUN_LOG_FORMAT.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose cannot be combined"), "drop one of them")
	}

	settings, err := config.LoadSettings(nil)
	if err != nil {
		return errors.NewConfigError(err)
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			v = settings.Verbosity()
		}
		level = logging.LevelFromVerbosity(v)
	}

	formatValue := logFormat
	if f := cmd.Flags().Lookup("log-format"); (f == nil || !f.Changed) && settings.LogFormat != "" {
		formatValue = settings.LogFormat
	}
	format, err := logging.ParseFormat(formatValue)
	if err != nil {
		return errors.NewUserError(err, "use --log-format text or --log-format json")
	}

	opts := logging.Options{Level: level, Format: format, Output: cmd.ErrOrStderr()}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		opts.File = f
	}

	logger := logging.New(opts)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load errors and validates the platform flag.
func checkConfig(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil && !skipsConfigCheck(cmd) {
		return errors.NewConfigError(configLoadErr)
	}

	if len(platformFlag) == 0 {
		return nil
	}
	if _, err := platform.ParseKeys(platformFlag); err != nil {
		return errors.NewUserError(err, "Run 'shotgun platforms' to see valid platforms")
	}
	return nil
}

func skipsConfigCheck(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipConfigCheck] == "true" {
			return true
		}
	}
	return false
}

func Execute() error {
	return rootCmd.Execute()
}
