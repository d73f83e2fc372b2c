package doctor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thoreinstein/shotgun/internal/config"
	"github.com/thoreinstein/shotgun/internal/dispatch"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/internal/redact"
)

// CredentialCheck verifies that one platform's adapter has the credentials
// it needs to post.
type CredentialCheck struct {
	key   platform.Key
	creds dispatch.Credentials
}

var _ Check = (*CredentialCheck)(nil)

// NewCredentialCheck creates a credential check for key using resolved creds.
func NewCredentialCheck(key platform.Key, creds dispatch.Credentials) *CredentialCheck {
	return &CredentialCheck{key: key, creds: creds}
}

// Name returns the unique identifier for this check.
func (c *CredentialCheck) Name() string {
	return string(c.key)
}

// Category returns the grouping for this check.
func (c *CredentialCheck) Category() string {
	return "credentials"
}

// Run builds the platform's adapter and asks it to validate its credentials.
func (c *CredentialCheck) Run() *Result {
	result := &Result{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"configured": maskedFields(c.creds)},
	}

	if !dispatch.Implemented(c.key) {
		result.Status = SeverityInfo
		result.Message = "integration is not yet implemented; posts will fail"
		return result
	}

	adapter, err := dispatch.New(c.key, c.creds)
	if err != nil {
		result.Status = SeverityError
		result.Message = err.Error()
		return result
	}

	if adapter.ValidateCredentials() {
		result.Status = SeverityPass
		result.Message = "credentials configured"
		return result
	}

	required := dispatch.RequiredCredentials(c.key)
	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("missing or invalid credentials (needs %s)", strings.Join(required, ", "))
	result.Details["required"] = required
	result.FixHint = credentialHint(c.key, required)
	return result
}

// maskedFields returns the configured credential fields with values masked.
func maskedFields(creds dispatch.Credentials) map[string]string {
	return redact.MaskSecrets(creds.Fields())
}

func credentialHint(key platform.Key, required []string) string {
	names := make([]string, len(required))
	copy(names, required)
	sort.Strings(names)

	envs := make([]string, len(names))
	for i, name := range names {
		envs[i] = config.EnvPrefixFor(key) + strings.ToUpper(name)
	}
	return fmt.Sprintf("shotgun config set credentials.%s.%s <value>, or export %s",
		key, names[0], strings.Join(envs, ", "))
}

// CredentialChecks returns one check per built-in platform using the
// credentials resolved by cfg.
func CredentialChecks(cfg *config.Config) []Check {
	keys := platform.Keys()
	checks := make([]Check, len(keys))
	for i, key := range keys {
		checks[i] = NewCredentialCheck(key, cfg.CredentialsFor(key))
	}
	return checks
}
