package dispatch

import (
	"context"

	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// Placeholder answers for platforms without an integration. Every post fails.
type Placeholder struct {
	key platform.Key
}

// NewPlaceholder returns a placeholder adapter for key.
func NewPlaceholder(key platform.Key) *Placeholder {
	return &Placeholder{key: key}
}

// Platform implements Adapter.
func (p *Placeholder) Platform() platform.Key { return p.key }

// ValidateCredentials always reports false.
func (p *Placeholder) ValidateCredentials() bool { return false }

// Post implements Adapter.
func (p *Placeholder) Post(_ context.Context, _ form.Data) Result {
	return failure(p.key, string(p.key)+" integration is not yet implemented")
}
