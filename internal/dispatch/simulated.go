package dispatch

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/logging"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/internal/redact"
)

// Simulated stands in for a platform API that is not wired yet. It checks
// credentials, logs the payload it would send and fabricates a post id.
type Simulated struct {
	key       platform.Key
	idPrefix  string
	urlPrefix string
	missing   string
	secrets   []string
	opts      options
}

// NewFacebook returns the simulated Facebook adapter. It needs an access token.
func NewFacebook(creds Credentials, opts ...Option) *Simulated {
	return &Simulated{
		key:       platform.Facebook,
		idPrefix:  "fb_",
		urlPrefix: "https://facebook.com/posts/",
		missing:   "Facebook access token not configured",
		secrets:   []string{creds.AccessToken},
		opts:      newOptions(opts),
	}
}

// NewTwitter returns the simulated Twitter adapter. It needs the API key
// and secret plus the access token and secret.
func NewTwitter(creds Credentials, opts ...Option) *Simulated {
	return &Simulated{
		key:       platform.Twitter,
		idPrefix:  "tw_",
		urlPrefix: "https://twitter.com/i/status/",
		missing:   "Twitter API credentials not configured",
		secrets:   []string{creds.APIKey, creds.APISecret, creds.AccessToken, creds.AccessSecret},
		opts:      newOptions(opts),
	}
}

// Platform implements Adapter.
func (s *Simulated) Platform() platform.Key { return s.key }

// ValidateCredentials reports whether every required secret is non-empty.
func (s *Simulated) ValidateCredentials() bool {
	if len(s.secrets) == 0 {
		return false
	}
	for _, secret := range s.secrets {
		if secret == "" {
			return false
		}
	}
	return true
}

// Post implements Adapter. No network call is made.
func (s *Simulated) Post(ctx context.Context, data form.Data) Result {
	if !s.ValidateCredentials() {
		return failure(s.key, s.missing)
	}

	logging.FromContext(ctx).Info("simulated post",
		"platform", string(s.key),
		slog.Any("payload", payloadAttrs(data)),
	)

	stamp := strconv.FormatInt(s.opts.now().UnixMilli(), 10)
	return Result{
		Success:  true,
		Platform: s.key,
		PostID:   s.idPrefix + stamp,
		URL:      s.urlPrefix + stamp,
	}
}

// payloadAttrs flattens form data into a log-friendly map with secrets masked.
func payloadAttrs(data form.Data) map[string]any {
	out := make(map[string]any, len(data))
	for name, v := range data {
		switch v := v.(type) {
		case form.Text:
			out[name] = redact.MaskField(name, string(v))
		case form.Bool:
			out[name] = bool(v)
		case form.Files:
			out[name] = []string(v)
		}
	}
	return out
}
