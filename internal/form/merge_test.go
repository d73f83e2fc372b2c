package form

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/shotgun/internal/platform"
)

func TestMerge_Empty(t *testing.T) {
	t.Parallel()

	got := Merge(platform.Default(), nil)
	assert.Empty(t, got)
	assert.Empty(t, FieldNames(platform.Default(), []platform.Key{}))
}

func TestMerge_DiscoveryOrder(t *testing.T) {
	t.Parallel()

	got := FieldNames(platform.Default(), []platform.Key{platform.Reddit, platform.Twitter})
	want := []string{"title", "text", "subreddit", "link", "image", "thread"}
	assert.Equal(t, want, got)

	// Reversing the selection changes the order but not the set.
	got = FieldNames(platform.Default(), []platform.Key{platform.Twitter, platform.Reddit})
	want = []string{"text", "image", "thread", "title", "subreddit", "link"}
	assert.Equal(t, want, got)
}

func TestMerge_MostRestrictiveWins(t *testing.T) {
	t.Parallel()

	fields := Merge(platform.Default(), []platform.Key{platform.Facebook, platform.Twitter, platform.Reddit})

	text := find(t, fields, "text")
	assert.True(t, text.Required)
	assert.Equal(t, 280, text.MaxLength)
	assert.Equal(t, []platform.Key{platform.Facebook, platform.Twitter, platform.Reddit}, text.Platforms)

	image := find(t, fields, "image")
	assert.False(t, image.Required)
	assert.Equal(t, 4, image.MaxFiles)
	assert.Equal(t, GroupMedia, image.Group())

	link := find(t, fields, "link")
	assert.False(t, link.HasMaxLength())
}

func TestMerge_OptionalPlatformCannotRelaxRequirement(t *testing.T) {
	t.Parallel()

	// Reddit declares text as optional, Twitter requires it.
	fields := Merge(platform.Default(), []platform.Key{platform.Reddit, platform.Twitter})
	text := find(t, fields, "text")
	assert.True(t, text.Required)
	assert.Equal(t, 280, text.MaxLength)
}

func TestMerge_RequiredIsOrAndMaxLengthIsMin(t *testing.T) {
	t.Parallel()

	reg := platform.Default()
	keys := reg.AllKeys()

	// Every non-empty subset of platforms, in canonical order.
	for mask := 1; mask < 1<<len(keys); mask++ {
		var selected []platform.Key
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				selected = append(selected, k)
			}
		}

		for _, m := range Merge(reg, selected) {
			wantRequired := false
			wantMax := 0
			var users []platform.Key
			for _, k := range selected {
				fc, ok := reg.MustGet(k).Field(m.Name)
				if !ok {
					continue
				}
				users = append(users, k)
				wantRequired = wantRequired || fc.IsRequired()
				if n, has := platform.MaxLengthOf(fc); has && (wantMax == 0 || n < wantMax) {
					wantMax = n
				}
			}
			if m.Required != wantRequired {
				t.Errorf("%v: %s Required = %v, want %v", selected, m.Name, m.Required, wantRequired)
			}
			if m.MaxLength != wantMax {
				t.Errorf("%v: %s MaxLength = %d, want %d", selected, m.Name, m.MaxLength, wantMax)
			}
			if !slices.Equal(m.Platforms, users) {
				t.Errorf("%v: %s Platforms = %v, want %v", selected, m.Name, m.Platforms, users)
			}
		}
	}
}

func TestMerge_AllPlatformsHasNoDuplicates(t *testing.T) {
	t.Parallel()

	names := FieldNames(platform.Default(), platform.Keys())
	assert.Greater(t, len(names), 10)

	seen := map[string]bool{}
	for _, n := range names {
		require.False(t, seen[n], "duplicate field %q", n)
		seen[n] = true
	}
	for _, want := range []string{"text", "caption", "webhookUrl", "video"} {
		assert.Contains(t, names, want)
	}
}

func TestByGroup(t *testing.T) {
	t.Parallel()

	fields := Merge(platform.Default(), []platform.Key{platform.Twitter, platform.Discord})
	groups := ByGroup(fields)

	require.Len(t, groups, 3)
	assert.Equal(t, GroupContent, groups[0].Group)
	assert.Equal(t, GroupMedia, groups[1].Group)
	assert.Equal(t, GroupOptions, groups[2].Group)

	var options []string
	for _, f := range groups[2].Fields {
		options = append(options, f.Name)
	}
	assert.Equal(t, []string{"thread", "embed"}, options)
}

func TestByGroup_OmitsEmptySections(t *testing.T) {
	t.Parallel()

	groups := ByGroup(Merge(platform.Default(), []platform.Key{platform.Reddit}))
	require.Len(t, groups, 1)
	assert.Equal(t, "Content", groups[0].Group.String())
}

func find(t *testing.T, fields []MergedField, name string) MergedField {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not merged", name)
	return MergedField{}
}
