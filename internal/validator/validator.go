// Package validator checks a composed post against every selected
// platform's field schema and cross-field rules.
package validator

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// GeneralKey is the reserved Errors key for selection-level problems.
const GeneralKey = "general"

// Errors maps a platform key (or GeneralKey) to its ordered error messages.
// An empty map means the post is valid.
type Errors map[string][]string

// Empty reports whether no errors were recorded.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// For returns the messages recorded for a platform.
func (e Errors) For(key platform.Key) []string {
	return e[string(key)]
}

// Count returns the total number of messages across all keys.
func (e Errors) Count() int {
	n := 0
	for _, msgs := range e {
		n += len(msgs)
	}
	return n
}

// Keys returns the keys with errors: GeneralKey first, then platforms in
// canonical order, then anything else sorted.
func (e Errors) Keys() []string {
	var keys []string
	if _, ok := e[GeneralKey]; ok {
		keys = append(keys, GeneralKey)
	}
	for _, k := range platform.KeyStrings() {
		if _, ok := e[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range e {
		if k != GeneralKey && !platform.Key(k).Valid() {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// Rule is a platform-specific cross-field check.
type Rule struct {
	// Platform is the platform the rule applies to.
	Platform platform.Key
	// Violated reports whether data breaks the rule.
	Violated func(data form.Data) bool
	// Message is recorded under Platform when Violated returns true.
	Message string
}

// DefaultRules returns the built-in cross-field rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Platform: platform.Reddit,
			Violated: func(d form.Data) bool {
				return d.Present("text") && d.Present("link")
			},
			Message: "Reddit: cannot have both text and link — choose one",
		},
		{
			Platform: platform.Instagram,
			Violated: func(d form.Data) bool { return !d.Present("image") },
			Message:  "Instagram requires at least one image or video",
		},
		{
			Platform: platform.TikTok,
			Violated: func(d form.Data) bool { return !d.Present("video") },
			Message:  "TikTok requires a video",
		},
	}
}

// Validator applies field schemas and cross-field rules.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	registry *platform.Registry
	rules    []Rule
}

// New creates a Validator over reg using rules. A nil rules slice means
// no cross-field rules; use DefaultRules for the built-in set.
func New(reg *platform.Registry, rules []Rule) *Validator {
	return &Validator{
		registry: reg,
		rules:    slices.Clone(rules),
	}
}

// Default returns a Validator over the built-in registry and rules.
func Default() *Validator {
	return New(platform.Default(), DefaultRules())
}

// Validate checks data against each selected platform independently.
// Platforms without errors are absent from the result. An empty selection
// yields an empty result; see CheckSelection for that rule.
func (v *Validator) Validate(selected []platform.Key, data form.Data) Errors {
	errs := make(Errors)

	for _, key := range selected {
		var msgs []string

		cfg, err := v.registry.Get(key)
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("%s is not a supported platform", key))
		} else {
			msgs = append(msgs, checkFields(cfg, data)...)
		}

		for _, r := range v.rules {
			if r.Platform == key && r.Violated(data) {
				msgs = append(msgs, r.Message)
			}
		}

		if len(msgs) > 0 {
			errs[string(key)] = msgs
		}
	}

	return errs
}

// Validate checks data with the default Validator.
func Validate(selected []platform.Key, data form.Data) Errors {
	return Default().Validate(selected, data)
}

// CheckSelection enforces the submission rule that at least one platform
// must be selected. It returns an empty Errors when the selection is usable.
func CheckSelection(selected []platform.Key) Errors {
	if len(selected) == 0 {
		return Errors{GeneralKey: {"Please select at least one platform"}}
	}
	return Errors{}
}

// checkFields applies the platform's own field schema, independent of merging.
func checkFields(cfg *platform.Config, data form.Data) []string {
	var msgs []string

	for _, f := range cfg.Fields {
		label := capitalize(f.Name)

		if f.Config.IsRequired() && !data.Present(f.Name) {
			msgs = append(msgs, label+" is required")
		}

		switch c := f.Config.(type) {
		case platform.TextField:
			if text, ok := data[f.Name].(form.Text); ok && c.MaxLength > 0 && text.Len() > c.MaxLength {
				msgs = append(msgs, fmt.Sprintf("%s exceeds maximum length of %d characters", label, c.MaxLength))
			}
		case platform.FileField:
			if files, ok := data[f.Name].(form.Files); ok && c.MaxFiles > 0 && len(files) > c.MaxFiles {
				msgs = append(msgs, fmt.Sprintf("%s exceeds maximum of %d files", label, c.MaxFiles))
			}
		case platform.BooleanField:
		}
	}

	return msgs
}

// capitalize upper-cases the first letter and leaves the rest unchanged.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// String renders the errors one per line as "key: message".
func (e Errors) String() string {
	var sb strings.Builder
	for _, k := range e.Keys() {
		for _, msg := range e[k] {
			fmt.Fprintf(&sb, "%s: %s\n", k, msg)
		}
	}
	return sb.String()
}
