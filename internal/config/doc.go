// Package config loads shotgun's configuration file and platform credentials.
//
// The file is YAML, looked up as config.yaml in the working directory and
// then in $XDG_CONFIG_HOME/shotgun (or $SHOTGUN_CONFIG_DIR when set):
//
//	version: 1
//	default_platforms: [twitter, bluesky, discord]
//	webhook_timeout: 10s
//	credentials:
//	  discord:
//	    webhook_url: https://discord.com/api/webhooks/...
//	  facebook:
//	    access_token: EAA...
//
// Credentials missing from the file fall back to per-platform environment
// variables such as FACEBOOK_ACCESS_TOKEN or DISCORD_WEBHOOK_URL, and
// finally to the empty string. See [EnvCredentials].
//
// Scalar settings can also be overridden with SHOTGUN_-prefixed variables,
// e.g. SHOTGUN_WEBHOOK_TIMEOUT=30s.
package config
