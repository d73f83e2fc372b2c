package form

import (
	"github.com/thoreinstein/shotgun/internal/platform"
)

// Group is the display section a merged field belongs to.
type Group int

const (
	// GroupContent holds text inputs.
	GroupContent Group = iota
	// GroupMedia holds file inputs.
	GroupMedia
	// GroupOptions holds toggles.
	GroupOptions
)

func (g Group) String() string {
	switch g {
	case GroupContent:
		return "Content"
	case GroupMedia:
		return "Media"
	case GroupOptions:
		return "Options"
	default:
		return "Other"
	}
}

// Groups returns every group in display order.
func Groups() []Group {
	return []Group{GroupContent, GroupMedia, GroupOptions}
}

// MergedField is the effective constraint set of one field across the
// selected platforms.
type MergedField struct {
	Name string
	Kind platform.FieldKind

	// Required is true if any using platform requires the field.
	Required bool

	// MaxLength is the smallest limit among using platforms; zero means none.
	MaxLength int

	// MaxFiles is the smallest attachment limit among using platforms; zero means none.
	MaxFiles int

	// Platforms lists the selected platforms declaring this field, in selection order.
	Platforms []platform.Key

	// Config is the configuration from the platform that first declared the
	// field. Display hints (placeholder, label, accept) come from here.
	Config platform.FieldConfig
}

// HasMaxLength reports whether any using platform limits the field's length.
func (m MergedField) HasMaxLength() bool {
	return m.MaxLength > 0
}

// Group returns the display group for the field's kind.
func (m MergedField) Group() Group {
	switch m.Kind {
	case platform.KindFile:
		return GroupMedia
	case platform.KindBoolean:
		return GroupOptions
	default:
		return GroupContent
	}
}

// Merge computes the union of fields across selected platforms.
//
// Fields appear in discovery order: first-selected platform first, then
// each platform's declared field order. Required-ness is OR-ed and length
// limits take the minimum. Keys not in reg are skipped; an empty selection
// yields an empty result.
func Merge(reg *platform.Registry, selected []platform.Key) []MergedField {
	var merged []MergedField
	index := make(map[string]int)

	for _, key := range selected {
		cfg, err := reg.Get(key)
		if err != nil {
			continue
		}

		for _, f := range cfg.Fields {
			i, seen := index[f.Name]
			if !seen {
				i = len(merged)
				index[f.Name] = i
				merged = append(merged, MergedField{
					Name:   f.Name,
					Kind:   f.Config.Kind(),
					Config: f.Config,
				})
			}
			fold(&merged[i], key, f.Config)
		}
	}

	return merged
}

func fold(m *MergedField, key platform.Key, cfg platform.FieldConfig) {
	for _, k := range m.Platforms {
		if k == key {
			return
		}
	}
	m.Platforms = append(m.Platforms, key)

	if cfg.IsRequired() {
		m.Required = true
	}

	switch c := cfg.(type) {
	case platform.TextField:
		m.MaxLength = minLimit(m.MaxLength, c.MaxLength)
	case platform.FileField:
		m.MaxFiles = minLimit(m.MaxFiles, c.MaxFiles)
	case platform.BooleanField:
	}
}

// minLimit folds a limit where zero means "unset".
func minLimit(current, next int) int {
	switch {
	case next <= 0:
		return current
	case current <= 0:
		return next
	default:
		return min(current, next)
	}
}

// GroupedFields is one display section and its fields.
type GroupedFields struct {
	Group  Group
	Fields []MergedField
}

// ByGroup splits merged fields into display sections, keeping discovery
// order within each. Empty sections are omitted.
func ByGroup(fields []MergedField) []GroupedFields {
	var out []GroupedFields
	for _, g := range Groups() {
		var section []MergedField
		for _, f := range fields {
			if f.Group() == g {
				section = append(section, f)
			}
		}
		if len(section) > 0 {
			out = append(out, GroupedFields{Group: g, Fields: section})
		}
	}
	return out
}

// FieldNames returns the ordered, de-duplicated union of field names
// declared by the selected platforms.
func FieldNames(reg *platform.Registry, selected []platform.Key) []string {
	fields := Merge(reg, selected)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}
