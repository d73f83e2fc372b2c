// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// Sentinel errors for prompts.
var (
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector reads answers from a line-oriented reader.
type Selector struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// readLine returns the next trimmed line. EOF before any input is
// ErrSelectionCancelled (e.g. Ctrl+D).
func (s *Selector) readLine() (string, error) {
	input, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input == "" {
			return "", ErrSelectionCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading input")
		}
	}
	return strings.TrimSpace(input), nil
}

// SelectPlatforms lists every platform with its current state and toggles
// the entries the user names, by number or key, separated by commas or
// spaces. An empty answer keeps the current selection.
//
// Returns:
//   - The resulting selection, in toggle order
//   - ErrInvalidSelection if an entry is out of range or unknown
//   - ErrSelectionCancelled if input is EOF
func (s *Selector) SelectPlatforms(reg *platform.Registry, current *platform.Selection) (*platform.Selection, error) {
	all := reg.All()

	fmt.Fprintln(s.writer, "Select platforms:")
	for i, p := range all {
		mark := " "
		if current.Contains(p.Key) {
			mark = "x"
		}
		fmt.Fprintf(s.writer, "  [%s] %d. %s %s\n", mark, i+1, p.Icon, p.Name)
	}
	fmt.Fprint(s.writer, "Toggle (e.g. 1,3 or discord): ")

	input, err := s.readLine()
	if err != nil {
		return nil, err
	}

	out := platform.NewSelection(current.Keys()...)
	for _, token := range strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' }) {
		key, err := resolveToken(token, all)
		if err != nil {
			return nil, err
		}
		out.Toggle(key)
	}
	return out, nil
}

func resolveToken(token string, all []*platform.Config) (platform.Key, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 || n > len(all) {
			return "", errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(all))
		}
		return all[n-1].Key, nil
	}
	key, err := platform.ParseKey(token)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSelection, "%q is not a platform", token)
	}
	return key, nil
}

// Confirm asks a yes/no question. An empty answer returns def.
func (s *Selector) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(s.writer, "%s %s ", question, hint)

	input, err := s.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidSelection, "%q is not yes or no", input)
	}
}
