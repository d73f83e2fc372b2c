package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/redact"
)

// Format selects how records are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a --log-format value into a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Newf("unknown log format %q (valid: text, json)", s)
	}
}

// Options configures New. The zero value logs warnings as text to stderr.
type Options struct {
	Level  slog.Leveler
	Format Format
	Output io.Writer

	// File, when set, receives a JSON copy of every record at the same level.
	File io.Writer
}

// New builds a logger from opts.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelWarn
	}

	h := newFormatHandler(out, opts.Format, level)
	if opts.File != nil {
		h = tee{h, newFormatHandler(opts.File, FormatJSON, level)}
	}
	return slog.New(h)
}

func newFormatHandler(out io.Writer, format Format, level slog.Leveler) slog.Handler {
	if format == FormatJSON {
		return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level, ReplaceAttr: replaceJSONAttr})
	}
	return newTextHandler(out, level, colorEnabled(out))
}

// replaceJSONAttr names the trace level and masks credential attributes.
func replaceJSONAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.LevelKey:
		if l, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(slog.LevelKey, levelName(l))
		}
		return a
	case slog.TimeKey, slog.MessageKey, slog.SourceKey:
		return a
	}
	if a.Value.Kind() == slog.KindGroup {
		return a
	}
	return slog.Any(a.Key, maskValue(a.Key, a.Value.Resolve()))
}

// maskValue returns v, masked when its key or content looks like a secret.
func maskValue(key string, v slog.Value) any {
	if v.Kind() == slog.KindString {
		return redact.MaskField(key, v.String())
	}
	if redact.ShouldMask(key) {
		return redact.MaskValue(v.String())
	}
	return v.Any()
}

func levelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

// tee sends each record to every handler that accepts its level.
type tee []slog.Handler

func (t tee) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (t tee) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(tee, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t tee) WithGroup(name string) slog.Handler {
	out := make(tee, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
