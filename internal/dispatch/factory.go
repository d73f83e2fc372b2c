package dispatch

import (
	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// New returns the adapter for key configured with creds.
// Returns ErrUnknownPlatform if key is not a supported platform.
func New(key platform.Key, creds Credentials, opts ...Option) (Adapter, error) {
	switch key {
	case platform.Facebook:
		return NewFacebook(creds, opts...), nil
	case platform.Twitter:
		return NewTwitter(creds, opts...), nil
	case platform.Discord:
		return NewWebhook(creds.WebhookURL, opts...), nil
	case platform.Instagram, platform.Threads, platform.Bluesky, platform.Reddit, platform.TikTok:
		return NewPlaceholder(key), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownPlatform, "unsupported platform: %s", string(key))
	}
}

// Implemented reports whether key has an adapter that can succeed.
func Implemented(key platform.Key) bool {
	switch key {
	case platform.Facebook, platform.Twitter, platform.Discord:
		return true
	default:
		return false
	}
}

// RequiredCredentials returns the credential config keys the adapter for
// key needs before ValidateCredentials can succeed. Placeholders need none
// since they never succeed.
func RequiredCredentials(key platform.Key) []string {
	switch key {
	case platform.Facebook:
		return []string{"access_token"}
	case platform.Twitter:
		return []string{"api_key", "api_secret", "access_token", "access_secret"}
	case platform.Discord:
		return []string{"webhook_url"}
	default:
		return nil
	}
}
