// Package editor launches the user's preferred text editor to compose post text.
package editor

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/shotgun/internal/errors"
)

// Editor runs an editor command attached to the given streams.
type Editor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Editor attached to the process's terminal.
func New() *Editor {
	return &Editor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Open launches the editor on path and waits for it to exit.
// Uses $EDITOR, falling back to $VISUAL, then nano, then vi. The
// variable may carry arguments, e.g. "code --wait".
func (e *Editor) Open(path string) error {
	args := strings.Fields(detectEditor())
	args = append(args, path)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", args[0])
	}
	return nil
}

// Compose writes initial to a temporary Markdown file, opens it in the
// editor and returns the saved contents with surrounding whitespace trimmed.
func (e *Editor) Compose(initial string) (string, error) {
	f, err := os.CreateTemp("", "shotgun-post-*.md")
	if err != nil {
		return "", errors.Wrap(err, "creating draft file")
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", errors.Wrap(err, "writing draft file")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "closing draft file")
	}

	if err := e.Open(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "reading draft file")
	}
	return strings.TrimSpace(string(data)), nil
}

// detectEditor returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}

	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// POSIX standard fallback (vi is available on all Unix systems)
	return "vi"
}
