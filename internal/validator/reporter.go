package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out      io.Writer
	format   Format
	registry *platform.Registry
}

// NewReporter creates a new Reporter that labels platforms using the
// built-in registry.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:      out,
		format:   format,
		registry: platform.Default(),
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(errs Errors) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(errs)
	default:
		return r.reportText(errs)
	}
}

// reportJSON writes the result as JSON.
func (r *Reporter) reportJSON(errs Errors) error {
	payload := struct {
		Valid  bool   `json:"valid"`
		Errors Errors `json:"errors"`
	}{
		Valid:  errs.Empty(),
		Errors: errs,
	}
	if payload.Errors == nil {
		payload.Errors = Errors{}
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(payload), "encoding JSON report")
}

// reportText writes the result as human-readable text.
func (r *Reporter) reportText(errs Errors) error {
	if errs.Empty() {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}

	keys := errs.Keys()
	summary := []string{color.RedString("%d error(s)", errs.Count())}
	if n := platformCount(keys); n > 0 {
		summary = append(summary, fmt.Sprintf("%d platform(s)", n))
	}
	fmt.Fprintf(r.out, "Validation failed: %s\n\n", strings.Join(summary, ", "))

	for _, k := range keys {
		fmt.Fprintf(r.out, "%s:\n", r.label(k))
		for _, msg := range errs[k] {
			r.printIssue(msg)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

func (r *Reporter) printIssue(msg string) {
	bullet := color.New(color.FgRed).Sprint("•")
	fmt.Fprintf(r.out, "  %s %s\n", bullet, msg)
}

// label returns the display name for an Errors key.
func (r *Reporter) label(key string) string {
	if key == GeneralKey {
		return "General"
	}
	cfg, err := r.registry.Get(platform.Key(key))
	if err != nil {
		return key
	}
	return cfg.Icon + " " + cfg.Name
}

func platformCount(keys []string) int {
	n := 0
	for _, k := range keys {
		if k != GeneralKey {
			n++
		}
	}
	return n
}
