package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorEnabled reports whether w should get ANSI colors. NO_COLOR and
// TERM=dumb switch them off even on a terminal.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTTY(w)
}

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var (
	timeColor  = forced(color.FgHiBlack)
	keyColor   = forced(color.FgCyan)
	traceColor = forced(color.FgHiBlack)
	debugColor = forced(color.FgMagenta)
	infoColor  = forced(color.FgGreen)
	warnColor  = forced(color.FgYellow)
	errorColor = forced(color.FgRed, color.Bold)
)

func levelColor(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return errorColor
	case l >= slog.LevelWarn:
		return warnColor
	case l >= slog.LevelInfo:
		return infoColor
	case l > LevelTrace:
		return debugColor
	default:
		return traceColor
	}
}

// textHandler writes one line per record:
//
//	15:04:05 WARN  post failed platform=twitter error="..."
//
// Attributes added with WithAttrs are rendered once and reused.
type textHandler struct {
	out    io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	color  bool
	prefix string
	attrs  []byte
}

func newTextHandler(out io.Writer, level slog.Leveler, useColor bool) *textHandler {
	return &textHandler{out: out, mu: &sync.Mutex{}, level: level, color: useColor}
}

func (h *textHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 128)
	if !r.Time.IsZero() {
		buf = append(buf, h.paint(timeColor, r.Time.Format(time.TimeOnly))...)
		buf = append(buf, ' ')
	}
	buf = append(buf, h.paint(levelColor(r.Level), fmt.Sprintf("%-5s", levelName(r.Level)))...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, h.prefix, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

func (h *textHandler) appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = h.appendAttr(buf, prefix, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, h.paint(keyColor, prefix+a.Key)...)
	buf = append(buf, '=')
	return fmt.Appendf(buf, "%v", maskValue(a.Key, a.Value))
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.attrs = slices.Clone(h.attrs)
	for _, a := range attrs {
		next.attrs = h.appendAttr(next.attrs, h.prefix, a)
	}
	return &next
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix += name + "."
	return &next
}

func (h *textHandler) paint(c *color.Color, s string) string {
	if !h.color {
		return s
	}
	return c.Sprint(s)
}
