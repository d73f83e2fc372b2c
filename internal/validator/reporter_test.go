package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestReporter_TextPassed(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText).Report(Errors{}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Validation passed") {
		t.Errorf("expected pass message, got: %q", buf.String())
	}
}

func TestReporter_TextFailed(t *testing.T) {
	color.NoColor = true

	errs := Errors{
		"twitter":  {"Text is required"},
		GeneralKey: {"Please select at least one platform"},
	}

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText).Report(errs); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Validation failed: 2 error(s), 1 platform(s)",
		"General:",
		"Twitter / X:",
		"• Text is required",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	if strings.Index(output, "General:") > strings.Index(output, "Twitter / X:") {
		t.Error("general errors should be listed first")
	}
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	errs := Errors{"tiktok": {"TikTok requires a video"}}
	if err := NewReporter(&buf, FormatJSON).Report(errs); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var got struct {
		Valid  bool                `json:"valid"`
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Valid {
		t.Error("valid = true, want false")
	}
	if len(got.Errors["tiktok"]) != 1 {
		t.Errorf("errors = %v", got.Errors)
	}
}

func TestReporter_JSONNilErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatJSON).Report(nil); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"errors": {}`) {
		t.Errorf("expected empty errors object, got: %s", buf.String())
	}
}
