package platform

import (
	"sync"

	"github.com/thoreinstein/shotgun/internal/errors"
)

// Registry is the read-only lookup table from Key to Config.
// It is populated once and is safe for concurrent use.
type Registry struct {
	order   []Key
	configs map[Key]*Config
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return newRegistry(builtin)
})

// Default returns the process-wide registry of built-in platforms.
func Default() *Registry {
	return defaultRegistry()
}

func newRegistry(configs []Config) *Registry {
	r := &Registry{
		order:   make([]Key, 0, len(configs)),
		configs: make(map[Key]*Config, len(configs)),
	}
	for i := range configs {
		c := configs[i].clone()
		r.order = append(r.order, c.Key)
		r.configs[c.Key] = c
	}
	return r
}

// Get returns a copy of the configuration for key.
// Returns ErrUnknownPlatform if the key is not registered.
func (r *Registry) Get(key Key) (*Config, error) {
	c, ok := r.configs[key]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownPlatform, "%q", string(key))
	}
	return c.clone(), nil
}

// MustGet is like Get but panics on unknown keys.
// Use it only with the package constants.
func (r *Registry) MustGet(key Key) *Config {
	c, err := r.Get(key)
	if err != nil {
		panic(err)
	}
	return c
}

// AllKeys returns all registered keys in canonical order.
func (r *Registry) AllKeys() []Key {
	out := make([]Key, len(r.order))
	copy(out, r.order)
	return out
}

// All returns copies of every configuration in canonical order.
func (r *Registry) All() []*Config {
	out := make([]*Config, len(r.order))
	for i, k := range r.order {
		out[i] = r.configs[k].clone()
	}
	return out
}

// Has reports whether key is registered.
func (r *Registry) Has(key Key) bool {
	_, ok := r.configs[key]
	return ok
}
