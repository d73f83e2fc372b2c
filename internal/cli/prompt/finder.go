package prompt

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// FindPlatforms opens a full-screen fuzzy finder where the user tabs
// through platforms to select several. Each entry previews the platform's
// fields and notes. Aborting returns ErrSelectionCancelled.
func FindPlatforms(reg *platform.Registry) ([]platform.Key, error) {
	all := reg.All()

	idxs, err := fuzzyfinder.FindMulti(
		all,
		func(i int) string {
			return fmt.Sprintf("%s %s", all[i].Icon, all[i].Name)
		},
		fuzzyfinder.WithHeader("Tab to select platforms, Enter to confirm"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describe(all[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "platform picker failed")
	}

	// FindMulti returns picks in selection order; keep registry order instead.
	chosen := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		chosen[i] = true
	}
	keys := make([]platform.Key, 0, len(idxs))
	for i, p := range all {
		if chosen[i] {
			keys = append(keys, p.Key)
		}
	}
	return keys, nil
}

// describe renders the preview pane for one platform.
func describe(p *platform.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", p.Icon, p.Name)
	for _, f := range p.Fields {
		fmt.Fprintf(&b, "  %-12s %s\n", f.Name, platform.Describe(f.Config))
	}
	if p.Notes != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Notes)
	}
	return b.String()
}
