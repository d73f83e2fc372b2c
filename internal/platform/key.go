package platform

import (
	"strings"

	"github.com/thoreinstein/shotgun/internal/errors"
)

// Key identifies one social-media destination.
type Key string

// Platform identifiers, in canonical display order.
const (
	Facebook  Key = "facebook"
	Instagram Key = "instagram"
	Twitter   Key = "twitter"
	Threads   Key = "threads"
	Bluesky   Key = "bluesky"
	Reddit    Key = "reddit"
	TikTok    Key = "tiktok"
	Discord   Key = "discord"
)

// Keys returns every platform key in canonical order.
// The returned slice is a fresh copy.
func Keys() []Key {
	return []Key{Facebook, Instagram, Twitter, Threads, Bluesky, Reddit, TikTok, Discord}
}

// Valid reports whether k is one of the fixed platform keys.
func (k Key) Valid() bool {
	for _, known := range Keys() {
		if k == known {
			return true
		}
	}
	return false
}

func (k Key) String() string {
	return string(k)
}

// ParseKey converts user input into a Key, ignoring case and surrounding space.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", errors.Wrapf(errors.ErrUnknownPlatform, "%q", s)
	}
	return k, nil
}

// ParseKeys parses every entry of names, reporting all invalid ones at once.
func ParseKeys(names []string) ([]Key, error) {
	keys := make([]Key, 0, len(names))
	var invalid []string
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		keys = append(keys, k)
	}
	if len(invalid) > 0 {
		return nil, errors.Wrapf(errors.ErrUnknownPlatform, "%s (valid: %s)",
			strings.Join(invalid, ", "), strings.Join(KeyStrings(), ", "))
	}
	return keys, nil
}

// KeyStrings returns the canonical keys as plain strings.
func KeyStrings() []string {
	keys := Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
