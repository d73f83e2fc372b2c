// Package form models the composed post and merges per-platform field
// requirements into one effective field set.
package form

import (
	"strings"
	"unicode/utf8"
)

// Value is one form input value: Text, Bool or Files.
type Value interface {
	isValue()
}

// Text is a string input.
type Text string

// Bool is a toggle input.
type Bool bool

// Files is an ordered list of attachment handles (local paths).
type Files []string

func (Text) isValue()  {}
func (Bool) isValue()  {}
func (Files) isValue() {}

// Len counts characters the way length limits are enforced: in code points.
func (t Text) Len() int {
	return utf8.RuneCountInString(string(t))
}

// Blank reports whether the text is empty or whitespace-only.
func (t Text) Blank() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Data maps field names to values. Field names are shared across
// platforms when they name the same concept.
type Data map[string]Value

// Text returns the named value if it is text, or "".
func (d Data) Text(name string) string {
	if t, ok := d[name].(Text); ok {
		return string(t)
	}
	return ""
}

// Bool returns the named value if it is a toggle, or false.
func (d Data) Bool(name string) bool {
	if b, ok := d[name].(Bool); ok {
		return bool(b)
	}
	return false
}

// Files returns the named value if it is an attachment list, or nil.
func (d Data) Files(name string) Files {
	if f, ok := d[name].(Files); ok {
		return f
	}
	return nil
}

// Present reports whether the named field carries a meaningful value:
// non-blank text, a true toggle, or at least one file.
func (d Data) Present(name string) bool {
	switch v := d[name].(type) {
	case Text:
		return !v.Blank()
	case Bool:
		return bool(v)
	case Files:
		return len(v) > 0
	default:
		return false
	}
}

// Clone returns a copy that shares no mutable state with d.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for k, v := range d {
		if f, ok := v.(Files); ok {
			v = append(Files(nil), f...)
		}
		out[k] = v
	}
	return out
}
