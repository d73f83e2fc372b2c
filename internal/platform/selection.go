package platform

import "slices"

// Selection is the insertion-ordered set of platforms chosen by the user.
// The zero value is an empty selection.
type Selection struct {
	keys []Key
}

// NewSelection builds a selection from keys, dropping duplicates while
// keeping first-seen order.
func NewSelection(keys ...Key) *Selection {
	s := &Selection{}
	for _, k := range keys {
		if !s.Contains(k) {
			s.keys = append(s.keys, k)
		}
	}
	return s
}

// Toggle adds key if absent and removes it if present.
// It reports whether key is selected afterwards.
func (s *Selection) Toggle(key Key) bool {
	if i := slices.Index(s.keys, key); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
		return false
	}
	s.keys = append(s.keys, key)
	return true
}

// Contains reports whether key is selected.
func (s *Selection) Contains(key Key) bool {
	return slices.Contains(s.keys, key)
}

// Keys returns the selected keys in selection order.
func (s *Selection) Keys() []Key {
	return slices.Clone(s.keys)
}

// Len returns the number of selected platforms.
func (s *Selection) Len() int {
	return len(s.keys)
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return len(s.keys) == 0
}
