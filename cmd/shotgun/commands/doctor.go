package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shotgun/internal/doctor"
	"github.com/thoreinstein/shotgun/internal/errors"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

var (
	errDoctorWarnings = errors.New("doctor found warnings")
	errDoctorErrors   = errors.New("doctor found errors")
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and credential issues",
	Long: `Check the config file and every platform's credentials.

By default only warnings and errors are printed. --verbose prints every
check, --quiet prints nothing and --json prints the full report. These
three are mutually exclusive.

Exits 0 when everything passes, 1 on warnings and 2 on errors.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigCheck: "true"},
	PreRunE:     validateDoctorFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDoctorWithWriter(cmd.OutOrStdout())
	},
}

func init() {
	f := doctorCmd.Flags()
	f.BoolVar(&doctorJSON, "json", false, "print the report as JSON")
	f.BoolVar(&doctorQuiet, "quiet", false, "print nothing; report through the exit status")
	f.BoolVar(&doctorVerbose, "verbose", false, "print passing checks too")
	f.BoolVar(&doctorFix, "fix", false, "tighten config file permissions before reporting")
	rootCmd.AddCommand(doctorCmd)
}

func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	modes := 0
	for _, on := range []bool{doctorJSON, doctorQuiet, doctorVerbose} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return errors.NewUserError(
			errors.New("--json, --quiet and --verbose cannot be combined"),
			"pick one output mode")
	}
	return nil
}

func newDoctorRunner() *doctor.Runner {
	path := configPath()
	r := doctor.NewRunner(
		doctor.NewConfigSyntaxCheck(path),
		doctor.NewPermissionsCheck(path),
	)
	for _, c := range doctor.CredentialChecks(loadedConfig()) {
		r.AddCheck(c)
	}
	return r
}

func runDoctorWithWriter(w io.Writer) error {
	runner := newDoctorRunner()
	report := runner.Run()

	if doctorFix {
		repairs := runner.Fix()
		if !doctorQuiet && !doctorJSON {
			printRepairs(w, repairs)
		}
		if len(repairs) > 0 {
			report = runner.Run()
		}
	}

	switch {
	case doctorQuiet:
	case doctorJSON:
		if err := writeJSON(w, report); err != nil {
			return err
		}
	default:
		printReport(w, report, doctorVerbose)
	}

	var hint string
	if !doctorFix && report.Fixable() {
		hint = "run: shotgun doctor --fix"
	}
	switch {
	case report.HasErrors():
		return errors.NewExitErrorWithSuggestion(errDoctorErrors, errors.ExitSystem, hint)
	case report.HasWarnings():
		return errors.NewExitErrorWithSuggestion(errDoctorWarnings, errors.ExitUser, hint)
	}
	return nil
}

func printRepairs(w io.Writer, repairs []doctor.Repair) {
	for _, r := range repairs {
		if r.Err != nil {
			fmt.Fprintf(w, "%s could not fix %s: %v\n", color.RedString("✗"), r.Path, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s fixed %s: %s\n", color.GreenString("✓"), r.Path, r.Action)
	}
}

func printReport(w io.Writer, report *doctor.Report, all bool) {
	printed := false
	for _, res := range report.Results {
		problem := res.Status >= doctor.SeverityWarning
		if !problem && !all {
			continue
		}
		printed = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(res.Status), res.Category, res.Name, res.Message)
		if problem && res.FixHint != "" {
			fmt.Fprintf(w, "  hint: %s\n", res.FixHint)
		}
	}
	if printed {
		fmt.Fprintln(w)
	}

	s := report.Summary
	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n", s.Passed, s.Info, s.Warnings, s.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	}
	return "?"
}
