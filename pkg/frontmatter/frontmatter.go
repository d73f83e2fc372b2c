package frontmatter

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/shotgun/internal/errors"
)

// ErrUnclosedFrontmatter is returned when the opening delimiter has no
// matching closing delimiter.
var ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")

// Parse decodes the YAML header of r into matter and returns the body.
// A document without a header is returned whole, with matter untouched.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	header, body, found, err := split(content)
	if err != nil {
		return nil, err
	}
	if !found {
		return content, nil
	}

	if err := yaml.Unmarshal(header, matter); err != nil {
		return nil, errors.Wrap(err, "parsing frontmatter")
	}
	return body, nil
}

// split separates header and body. found is false when content does not
// open with a delimiter line.
func split(content []byte) (header, body []byte, found bool, err error) {
	rest, ok := trimDelimiter(content)
	if !ok {
		return nil, nil, false, nil
	}

	for offset := 0; offset <= len(rest); {
		line, next := nextLine(rest, offset)
		if string(bytes.TrimRight(line, "\r")) == "---" {
			return rest[:offset], rest[next:], true, nil
		}
		if next == offset {
			break
		}
		offset = next
	}
	return nil, nil, true, ErrUnclosedFrontmatter
}

// trimDelimiter strips an opening "---" line.
func trimDelimiter(content []byte) ([]byte, bool) {
	for _, open := range []string{"---\n", "---\r\n"} {
		if bytes.HasPrefix(content, []byte(open)) {
			return content[len(open):], true
		}
	}
	return nil, false
}

// nextLine returns the line starting at offset (without its newline) and
// the offset of the following line.
func nextLine(b []byte, offset int) (line []byte, next int) {
	i := bytes.IndexByte(b[offset:], '\n')
	if i < 0 {
		return b[offset:], len(b)
	}
	return b[offset : offset+i], offset + i + 1
}

// Format renders matter as a YAML header followed by body.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString(body)
		if body[len(body)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}

	return buf.Bytes(), nil
}
