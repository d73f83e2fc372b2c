package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/submit"
	"github.com/thoreinstein/shotgun/internal/validator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <draft>",
	Short: "Check a draft against every selected platform",
	Long: `Check a draft against the rules of every selected platform without
posting anything. Errors are grouped by platform.

Exit codes:
  0 - The draft is valid for every platform
  1 - At least one platform rejects the draft`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runValidateWithWriter(os.Stdout, args[0])
	},
}

func runValidateWithWriter(w io.Writer, path string) error {
	d, keys, err := loadDraft(path)
	if err != nil {
		return err
	}

	fillWebhook(d.Data, keys, loadedConfig())
	errs := submit.New(nil).Check(submit.Request{Platforms: keys, Data: d.Data})

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	} else {
		warnUnknown(w, d)
	}
	if err := validator.NewReporter(w, format).Report(errs); err != nil {
		return err
	}

	if !errs.Empty() {
		return validationError(errs)
	}
	return nil
}

// validationError converts a non-empty error map into a user-facing exit error.
func validationError(errs validator.Errors) error {
	err := errors.Wrapf(errors.ErrValidationFailed, "%d error(s)", errs.Count())
	if _, ok := errs[validator.GeneralKey]; ok {
		return errors.NewUserError(err, "select at least one platform with --platform or the draft's platforms list")
	}
	return errors.NewUserError(err, "fix the fields listed above and try again")
}

func reportErrors(w io.Writer, errs validator.Errors) error {
	return validator.NewReporter(w, validator.FormatText).Report(errs)
}
