package draft

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/paths"
	"github.com/thoreinstein/shotgun/internal/platform"
)

func (l *Loader) build(doc map[string]any, baseDir string) (*Draft, error) {
	d := &Draft{Data: make(form.Data, len(doc))}

	if raw, ok := doc[PlatformsKey]; ok {
		names, err := stringList(raw)
		if err != nil {
			return nil, errors.Wrap(err, PlatformsKey)
		}
		keys, err := platform.ParseKeys(names)
		if err != nil {
			return nil, err
		}
		d.Platforms = keys
	}

	kinds := l.fieldKinds()
	names := make([]string, 0, len(doc))
	for name := range doc {
		if name != PlatformsKey {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var problems []string
	for _, name := range names {
		kind, known := kinds[name]
		if !known {
			d.Unknown = append(d.Unknown, name)
			kind = platform.KindText
		}

		v, err := l.convert(kind, doc[name], baseDir)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		if v != nil {
			d.Data[name] = v
		}
	}

	if len(problems) > 0 {
		return nil, errors.Mark(errors.Newf("invalid fields: %s", strings.Join(problems, "; ")), ErrInvalidField)
	}
	return d, nil
}

// fieldKinds maps every declared field name to its kind.
func (l *Loader) fieldKinds() map[string]platform.FieldKind {
	kinds := make(map[string]platform.FieldKind)
	for _, cfg := range l.registry.All() {
		for _, f := range cfg.Fields {
			kinds[f.Name] = f.Config.Kind()
		}
	}
	return kinds
}

func (l *Loader) convert(kind platform.FieldKind, raw any, baseDir string) (form.Value, error) {
	if raw == nil {
		return nil, nil
	}

	switch kind {
	case platform.KindBoolean:
		switch v := raw.(type) {
		case bool:
			return form.Bool(v), nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, errors.Newf("expected true or false, got %q", v)
			}
			return form.Bool(b), nil
		default:
			return nil, errors.Newf("expected true or false, got %T", raw)
		}

	case platform.KindFile:
		paths, err := stringList(raw)
		if err != nil {
			return nil, err
		}
		return l.resolveFiles(paths, baseDir)

	default:
		s, err := scalar(raw)
		if err != nil {
			return nil, err
		}
		return form.Text(s), nil
	}
}

func (l *Loader) resolveFiles(names []string, baseDir string) (form.Files, error) {
	files := make(form.Files, 0, len(names))
	for _, p := range names {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		expanded, err := paths.ExpandHome(p)
		if err != nil {
			return nil, err
		}
		p = expanded
		if !filepath.IsAbs(p) && baseDir != "" {
			p = filepath.Join(baseDir, p)
		}
		if l.checkFiles {
			info, err := os.Stat(p)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrNotFound, "attachment %s", p)
			}
			if info.IsDir() {
				return nil, errors.Newf("attachment %s is a directory", p)
			}
		}
		files = append(files, p)
	}
	return files, nil
}

// stringList accepts a list of scalars or a single comma-separated string.
func stringList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case string:
		var out []string
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, err := scalar(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return v, nil
	default:
		return nil, errors.Newf("expected a list, got %T", raw)
	}
}

// scalar renders a decoded scalar as text. Numbers and dates are allowed
// so that e.g. a numeric title survives YAML or TOML typing.
func scalar(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", errors.Newf("expected text, got %T", raw)
	}
}
