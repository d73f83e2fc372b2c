package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/internal/cli"
	"github.com/thoreinstein/shotgun/internal/cli/prompt"
	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/draft"
	"github.com/thoreinstein/shotgun/internal/editor"
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/logging"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/internal/preview"
	"github.com/thoreinstein/shotgun/internal/submit"
)

var (
	postYes         bool
	postInteractive bool
	postEdit        bool
	postJSON        bool
)

// Interactive hooks, replaced in tests.
var (
	findPlatforms = prompt.FindPlatforms
	composeText   = func(initial string) (string, error) { return editor.New().Compose(initial) }
	stdinIsTTY    = func() bool { return logging.IsTTY(os.Stdin) }
)

func init() {
	postCmd.Flags().BoolVarP(&postYes, "yes", "y", false, "post without asking for confirmation")
	postCmd.Flags().BoolVarP(&postInteractive, "interactive", "i", false, "pick platforms interactively")
	postCmd.Flags().BoolVarP(&postEdit, "edit", "e", false, "compose the text in $EDITOR")
	postCmd.Flags().BoolVar(&postJSON, "json", false, "output the outcome as JSON")
	rootCmd.AddCommand(postCmd)
}

var postCmd = &cobra.Command{
	Use:   "post [draft]",
	Short: "Validate, preview and publish a post",
	Long: `Validate a draft against every selected platform and, when all of them
accept it, publish it to each one at the same time.

Nothing is posted if any platform rejects the draft. Platforms that fail
during posting do not affect the others; each result is reported.

Examples:
  # Post a draft after previewing it
  shotgun post hello.md

  # Write the text in your editor and pick platforms interactively
  shotgun post --edit --interactive

  # Post without confirmation and print the outcome as JSON
  shotgun post hello.md --yes --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPost(cmd.Context(), os.Stdin, os.Stdout, os.Stderr, args)
	},
}

func runPost(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	conf := loadedConfig()
	reg := platform.Default()

	d := &draft.Draft{Data: form.Data{}}
	var keys []platform.Key
	switch {
	case len(args) == 1:
		var err error
		d, keys, err = loadDraft(args[0])
		if err != nil {
			return err
		}
	case postEdit:
		var err error
		keys, _, err = cli.ResolvePlatforms(platformFlag, nil, conf.DefaultPlatforms)
		if err != nil {
			return err
		}
	default:
		return errors.NewUserError(errors.New("no draft given"), "pass a draft file, or use --edit to write the post now")
	}

	selector := prompt.NewSelectorWithIO(in, errOut)

	if postInteractive {
		var err error
		if keys, err = pickPlatforms(selector, reg, keys); err != nil {
			return err
		}
	}

	if postEdit {
		text, err := composeText(d.Data.Text("text"))
		if err != nil {
			return errors.NewSystemError(err, "set $EDITOR to your preferred editor")
		}
		d.Data["text"] = form.Text(text)
	}

	fillWebhook(d.Data, keys, conf)
	req := submit.Request{
		Platforms:   keys,
		Data:        d.Data,
		Credentials: conf.AllCredentials(),
	}
	submitter := submit.New(nil, dispatch.WithTimeout(conf.Timeout()))

	if errs := submitter.Check(req); !errs.Empty() {
		if postJSON {
			if err := writeJSON(out, submit.Outcome{Errors: errs}); err != nil {
				return err
			}
		} else {
			if err := reportErrors(out, errs); err != nil {
				return err
			}
		}
		return validationError(errs)
	}

	if !postJSON {
		warnUnknown(out, d)
		if err := preview.NewRenderer(out, reg).Render(keys, d.Data); err != nil {
			return err
		}
	}

	if !postYes {
		ok, err := selector.Confirm(fmt.Sprintf("Confirm & Post to %d platform(s)?", len(keys)), false)
		if err != nil {
			return errors.NewUserError(err, "pass --yes to post without confirmation")
		}
		if !ok {
			fmt.Fprintln(errOut, "Cancelled; nothing was posted.")
			return nil
		}
	}

	outcome := submitter.Submit(ctx, req)

	if postJSON {
		if err := writeJSON(out, outcome); err != nil {
			return err
		}
	} else {
		printResults(out, reg, outcome)
	}

	if err := outcome.Err(); err != nil {
		return errors.NewSystemError(err, "run: shotgun doctor")
	}
	return nil
}

// pickPlatforms runs the fuzzy finder on a terminal and the numbered
// selector otherwise.
func pickPlatforms(selector *prompt.Selector, reg *platform.Registry, current []platform.Key) ([]platform.Key, error) {
	if stdinIsTTY() {
		keys, err := findPlatforms(reg)
		if errors.Is(err, prompt.ErrSelectionCancelled) {
			return nil, errors.NewUserError(err, "select at least one platform to post")
		}
		return keys, err
	}

	sel, err := selector.SelectPlatforms(reg, platform.NewSelection(current...))
	if err != nil {
		return nil, errors.NewUserError(err, "answer with platform numbers or keys, e.g. 1,3 or discord")
	}
	return sel.Keys(), nil
}

func printResults(w io.Writer, reg *platform.Registry, outcome submit.Outcome) {
	fmt.Fprintln(w)
	for _, r := range outcome.Results {
		name := string(r.Platform)
		if p, err := reg.Get(r.Platform); err == nil {
			name = p.Icon + " " + p.Name
		}
		if r.Success {
			fmt.Fprintf(w, "%s %s: posted %s", color.GreenString("✓"), name, r.PostID)
			if r.URL != "" {
				fmt.Fprintf(w, " %s", color.New(color.Faint).Sprint(r.URL))
			}
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "%s %s: %s\n", color.RedString("✗"), name, r.Error)
	}
	fmt.Fprintf(w, "\nSubmission %s\n", outcome.ID)
}
