// Package draft loads a composed post from disk.
//
// A draft names its target platforms and carries the form fields. Three
// formats are accepted, chosen by file extension:
//
//   - Markdown (.md): YAML frontmatter holds platforms and fields, the body
//     becomes the "text" field.
//   - YAML (.yaml, .yml) and TOML (.toml): a flat document of fields plus
//     a "platforms" list.
//
// Attachment fields (image, video) are resolved relative to the draft's
// directory and must exist.
package draft

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/pkg/fileutil"
	"github.com/thoreinstein/shotgun/pkg/frontmatter"
)

// Format is a draft file format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
)

// PlatformsKey is the document key listing target platforms.
const PlatformsKey = "platforms"

// ErrInvalidField marks a draft that parsed but has fields that cannot be
// converted, such as a missing attachment or a non-boolean toggle.
var ErrInvalidField = errors.New("invalid draft field")

// Draft is a loaded post.
type Draft struct {
	// Path is the file the draft was read from, if any.
	Path string

	// Platforms are the targets named by the draft, in document order.
	Platforms []platform.Key

	// Data holds every field value.
	Data form.Data

	// Unknown lists field names no platform declares. They are kept in
	// Data but never validated or sent.
	Unknown []string
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "%q (use .md, .yaml or .toml)", filepath.Base(path))
	}
}

// Loader turns draft documents into form data.
type Loader struct {
	registry   *platform.Registry
	checkFiles bool
}

// NewLoader returns a Loader resolving field kinds against reg.
// When checkFiles is set, attachments must exist on disk.
func NewLoader(reg *platform.Registry, checkFiles bool) *Loader {
	if reg == nil {
		reg = platform.Default()
	}
	return &Loader{registry: reg, checkFiles: checkFiles}
}

// Load reads the draft at path using the built-in platforms.
func Load(path string) (*Draft, error) {
	return NewLoader(nil, true).Load(path)
}

// Load reads and decodes the draft at path.
func (l *Loader) Load(path string) (*Draft, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	content, err := fileutil.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrNotFound, "draft %s", path)
		}
		return nil, errors.Wrapf(err, "reading draft %s", path)
	}

	d, err := l.Parse(bytes.NewReader(content), format, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading draft %s", path)
	}
	d.Path = path
	return d, nil
}

// Parse decodes a draft from r. Relative attachment paths are resolved
// against baseDir.
func (l *Loader) Parse(r io.Reader, format Format, baseDir string) (*Draft, error) {
	doc, err := decode(r, format)
	if err != nil {
		return nil, err
	}
	return l.build(doc, baseDir)
}

func decode(r io.Reader, format Format) (map[string]any, error) {
	doc := make(map[string]any)

	switch format {
	case FormatMarkdown:
		body, err := frontmatter.Parse(r, &doc)
		if err != nil {
			return nil, errors.Wrap(err, "parsing frontmatter")
		}
		text := strings.TrimSpace(string(body))
		if text != "" {
			if _, dup := doc["text"]; dup {
				return nil, errors.New("text is set in both frontmatter and body")
			}
			doc["text"] = text
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "parsing YAML")
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", string(format))
	}

	return doc, nil
}
