package form

import (
	"testing"
)

func TestData_Present(t *testing.T) {
	t.Parallel()

	d := Data{
		"text":    Text("hello"),
		"blank":   Text("  \t\n"),
		"empty":   Text(""),
		"on":      Bool(true),
		"off":     Bool(false),
		"image":   Files{"a.png"},
		"noFiles": Files{},
	}

	tests := []struct {
		field string
		want  bool
	}{
		{"text", true},
		{"blank", false},
		{"empty", false},
		{"on", true},
		{"off", false},
		{"image", true},
		{"noFiles", false},
		{"missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := d.Present(tt.field); got != tt.want {
				t.Errorf("Present(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestData_TypedAccessors(t *testing.T) {
	t.Parallel()

	d := Data{"text": Text("hi"), "thread": Bool(true), "image": Files{"a", "b"}}

	if got := d.Text("text"); got != "hi" {
		t.Errorf("Text() = %q", got)
	}
	if got := d.Text("thread"); got != "" {
		t.Errorf("Text() on a toggle = %q, want empty", got)
	}
	if !d.Bool("thread") {
		t.Error("Bool(thread) = false")
	}
	if got := len(d.Files("image")); got != 2 {
		t.Errorf("len(Files(image)) = %d, want 2", got)
	}
	if d.Files("text") != nil {
		t.Error("Files() on text should be nil")
	}
}

func TestText_LenCountsCodePoints(t *testing.T) {
	t.Parallel()

	if got := Text("héllo 🦋").Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestData_Clone(t *testing.T) {
	t.Parallel()

	d := Data{"image": Files{"a.png"}}
	c := d.Clone()
	c.Files("image")[0] = "b.png"

	if d.Files("image")[0] != "a.png" {
		t.Error("Clone shares file slices with the original")
	}
}
