package dispatch

import (
	"context"
	"net/http"
	"time"

	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// DefaultTimeout bounds a single network call made by an adapter.
const DefaultTimeout = 10 * time.Second

// Result is the outcome of posting to one platform.
type Result struct {
	Success  bool         `json:"success"`
	Platform platform.Key `json:"platform"`
	PostID   string       `json:"postId,omitempty"`
	URL      string       `json:"url,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// Adapter posts form data to a single platform.
type Adapter interface {
	// Platform returns the key this adapter posts to.
	Platform() platform.Key

	// ValidateCredentials reports whether the adapter is configured well
	// enough to attempt a post. It never fails; misconfiguration is false.
	ValidateCredentials() bool

	// Post sends data and reports the outcome. All failures are returned
	// as a Result with Success false.
	Post(ctx context.Context, data form.Data) Result
}

// Credentials holds every option an adapter may read. Each adapter uses
// only the subset relevant to its platform.
type Credentials struct {
	APIKey       string `mapstructure:"api_key" yaml:"api_key,omitempty" json:"apiKey,omitempty" env:"API_KEY"`
	APISecret    string `mapstructure:"api_secret" yaml:"api_secret,omitempty" json:"apiSecret,omitempty" env:"API_SECRET"`
	AccessToken  string `mapstructure:"access_token" yaml:"access_token,omitempty" json:"accessToken,omitempty" env:"ACCESS_TOKEN"`
	AccessSecret string `mapstructure:"access_secret" yaml:"access_secret,omitempty" json:"accessSecret,omitempty" env:"ACCESS_SECRET"`
	WebhookURL   string `mapstructure:"webhook_url" yaml:"webhook_url,omitempty" json:"webhookUrl,omitempty" env:"WEBHOOK_URL"`
	Handle       string `mapstructure:"handle" yaml:"handle,omitempty" json:"handle,omitempty" env:"HANDLE"`
	AppPassword  string `mapstructure:"app_password" yaml:"app_password,omitempty" json:"appPassword,omitempty" env:"APP_PASSWORD"`
	ClientID     string `mapstructure:"client_id" yaml:"client_id,omitempty" json:"clientId,omitempty" env:"CLIENT_ID"`
	ClientSecret string `mapstructure:"client_secret" yaml:"client_secret,omitempty" json:"clientSecret,omitempty" env:"CLIENT_SECRET"`
	Username     string `mapstructure:"username" yaml:"username,omitempty" json:"username,omitempty" env:"USERNAME"`
	Password     string `mapstructure:"password" yaml:"password,omitempty" json:"password,omitempty" env:"PASSWORD"`
}

// WithDefaults returns c with every empty field filled from d.
func (c Credentials) WithDefaults(d Credentials) Credentials {
	fill := func(v *string, fallback string) {
		if *v == "" {
			*v = fallback
		}
	}
	fill(&c.APIKey, d.APIKey)
	fill(&c.APISecret, d.APISecret)
	fill(&c.AccessToken, d.AccessToken)
	fill(&c.AccessSecret, d.AccessSecret)
	fill(&c.WebhookURL, d.WebhookURL)
	fill(&c.Handle, d.Handle)
	fill(&c.AppPassword, d.AppPassword)
	fill(&c.ClientID, d.ClientID)
	fill(&c.ClientSecret, d.ClientSecret)
	fill(&c.Username, d.Username)
	fill(&c.Password, d.Password)
	return c
}

// Fields returns the credentials as a name/value map, keyed by config key.
// Empty values are omitted.
func (c Credentials) Fields() map[string]string {
	all := map[string]string{
		"api_key":       c.APIKey,
		"api_secret":    c.APISecret,
		"access_token":  c.AccessToken,
		"access_secret": c.AccessSecret,
		"webhook_url":   c.WebhookURL,
		"handle":        c.Handle,
		"app_password":  c.AppPassword,
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
		"username":      c.Username,
		"password":      c.Password,
	}
	for k, v := range all {
		if v == "" {
			delete(all, k)
		}
	}
	return all
}

// Set assigns the field named by its config key and reports whether the
// name was recognized.
func (c *Credentials) Set(name, value string) bool {
	var dst *string
	switch name {
	case "api_key":
		dst = &c.APIKey
	case "api_secret":
		dst = &c.APISecret
	case "access_token":
		dst = &c.AccessToken
	case "access_secret":
		dst = &c.AccessSecret
	case "webhook_url":
		dst = &c.WebhookURL
	case "handle":
		dst = &c.Handle
	case "app_password":
		dst = &c.AppPassword
	case "client_id":
		dst = &c.ClientID
	case "client_secret":
		dst = &c.ClientSecret
	case "username":
		dst = &c.Username
	case "password":
		dst = &c.Password
	default:
		return false
	}
	*dst = value
	return true
}

// Option configures adapters built by New.
type Option func(*options)

type options struct {
	client  *http.Client
	timeout time.Duration
	now     func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client == nil {
		o.client = &http.Client{}
	}
	return o
}

// WithHTTPClient sets the client used for network calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithTimeout bounds each network call. Non-positive values keep DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithClock replaces time.Now for synthesized post ids.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func failure(key platform.Key, msg string) Result {
	return Result{Success: false, Platform: key, Error: msg}
}
