// Package preview renders how a post will look on each selected platform
// before it is sent.
package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/internal/redact"
)

// textFields are shown in this order with these labels.
var textFields = []struct {
	name  string
	label string
}{
	{"text", "Text"},
	{"caption", "Caption"},
	{"title", "Title"},
	{"subreddit", "Subreddit"},
	{"link", "Link"},
	{"hashtags", "Hashtags"},
	{"webhookUrl", "Webhook URL"},
}

// Renderer writes previews.
type Renderer struct {
	out      io.Writer
	registry *platform.Registry
}

// NewRenderer returns a Renderer using reg, or the built-in platforms when nil.
func NewRenderer(out io.Writer, reg *platform.Registry) *Renderer {
	if reg == nil {
		reg = platform.Default()
	}
	return &Renderer{out: out, registry: reg}
}

// Render writes a summary line followed by one block per selected platform.
// Each block shows only the fields that platform declares.
func (r *Renderer) Render(selected []platform.Key, data form.Data) error {
	fmt.Fprintf(r.out, "%s Ready to post to %s\n", color.GreenString("✓"), plural(len(selected), "platform"))

	for _, key := range selected {
		cfg, err := r.registry.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out)
		r.renderPlatform(cfg, data)
	}
	return nil
}

func (r *Renderer) renderPlatform(cfg *platform.Config, data form.Data) {
	fmt.Fprintln(r.out, badge(cfg).Sprintf(" %s %s ", cfg.Icon, cfg.Name))
	label := color.New(color.Bold)

	for _, f := range textFields {
		fc, declared := cfg.Field(f.name)
		if !declared || !data.Present(f.name) {
			continue
		}
		value := data.Text(f.name)
		if f.name == "webhookUrl" {
			value = redact.MaskWebhookURL(value)
		}

		heading := f.label
		if limit, ok := platform.MaxLengthOf(fc); ok {
			heading = fmt.Sprintf("%s (%d/%d)", f.label, form.Text(value).Len(), limit)
		}
		fmt.Fprintf(r.out, "  %s\n%s\n", label.Sprint(heading+":"), indent(value, "    "))
	}

	for _, name := range cfg.FieldNames() {
		fc, _ := cfg.Field(name)
		if fc.Kind() != platform.KindFile || !data.Present(name) {
			continue
		}
		files := data.Files(name)
		fmt.Fprintf(r.out, "  %s %s\n", label.Sprint(capitalize(name)+":"), plural(len(files), "file"))
		for _, f := range files {
			fmt.Fprintf(r.out, "    - %s\n", f)
		}
	}

	if _, ok := cfg.Field("embed"); ok && data.Bool("embed") {
		fmt.Fprintf(r.out, "  %s\n", label.Sprint("Embed:"))
		if title := data.Text("embedTitle"); title != "" {
			fmt.Fprintf(r.out, "    %s\n", color.New(color.Bold).Sprint(title))
		}
		if desc := data.Text("embedDescription"); desc != "" {
			fmt.Fprintln(r.out, indent(desc, "    "))
		}
	}

	if _, ok := cfg.Field("thread"); ok && data.Bool("thread") {
		fmt.Fprintf(r.out, "  %s\n", color.New(color.FgCyan).Sprint("🧵 Thread"))
	}
}

// badge colors a platform header with its brand color as background.
func badge(cfg *platform.Config) *color.Color {
	r, g, b, ok := parseHex(cfg.Color)
	if !ok {
		return color.New(color.Bold, color.ReverseVideo)
	}
	return color.BgRGB(r, g, b).Add(color.FgHiWhite, color.Bold)
}

// parseHex decodes "#RRGGBB".
func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
