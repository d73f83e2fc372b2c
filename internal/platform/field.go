package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldKind discriminates the FieldConfig variants.
type FieldKind int

const (
	// KindText is a free-form string input.
	KindText FieldKind = iota
	// KindBoolean is a checkbox-style toggle.
	KindBoolean
	// KindFile is a media attachment list.
	KindFile
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// FieldConfig describes one form field for one platform.
// The concrete type is one of TextField, BooleanField or FileField.
type FieldConfig interface {
	// Kind reports which variant this is.
	Kind() FieldKind
	// IsRequired reports whether the platform rejects posts without a value.
	IsRequired() bool

	fieldConfig()
}

// TextField is a string input with an optional length limit.
type TextField struct {
	Required bool
	// MaxLength is the character limit; zero means unlimited.
	MaxLength   int
	Placeholder string
}

// BooleanField is a toggle rendered with Label.
type BooleanField struct {
	Required bool
	Label    string
}

// FileField is a media attachment.
type FileField struct {
	Required bool
	// Accept is a MIME filter such as "image/*".
	Accept   string
	Multiple bool
	// MaxFiles limits the number of attachments; zero means unlimited.
	MaxFiles int
}

func (TextField) Kind() FieldKind    { return KindText }
func (BooleanField) Kind() FieldKind { return KindBoolean }
func (FileField) Kind() FieldKind    { return KindFile }

func (f TextField) IsRequired() bool    { return f.Required }
func (f BooleanField) IsRequired() bool { return f.Required }
func (f FileField) IsRequired() bool    { return f.Required }

func (TextField) fieldConfig()    {}
func (BooleanField) fieldConfig() {}
func (FileField) fieldConfig()    {}

// MaxLengthOf returns the text limit of cfg and whether one is set.
// Only text fields carry a length limit.
func MaxLengthOf(cfg FieldConfig) (int, bool) {
	if t, ok := cfg.(TextField); ok && t.MaxLength > 0 {
		return t.MaxLength, true
	}
	return 0, false
}

// Field pairs a field name with its configuration.
type Field struct {
	Name   string
	Config FieldConfig
}

// Describe summarizes cfg for help output, e.g. "text, required, max 280 chars".
func Describe(cfg FieldConfig) string {
	parts := []string{cfg.Kind().String()}
	if cfg.IsRequired() {
		parts = append(parts, "required")
	}
	switch c := cfg.(type) {
	case TextField:
		if c.MaxLength > 0 {
			parts = append(parts, fmt.Sprintf("max %d chars", c.MaxLength))
		}
	case FileField:
		if c.Accept != "" {
			parts = append(parts, c.Accept)
		}
		if c.MaxFiles > 0 {
			parts = append(parts, fmt.Sprintf("max %d files", c.MaxFiles))
		}
	case BooleanField:
		if c.Label != "" {
			parts = append(parts, strconv.Quote(c.Label))
		}
	}
	return strings.Join(parts, ", ")
}
