// Package config provides configuration loading and validation for flightcheck.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// StorePath is the append-only file receiving accepted records.
	StorePath string `yaml:"store_path"`

	// DefaultInput is analyzed or viewed when no file is given.
	DefaultInput string `yaml:"default_input"`

	// ExportSuffix replaces the input extension when exporting CSV.
	ExportSuffix string `yaml:"export_suffix"`

	// MaxErrorsShown caps the rejected lines listed in text reports.
	MaxErrorsShown int `yaml:"max_errors_shown"`

	// ViewMaxLines caps the lines printed by the raw file view.
	ViewMaxLines int `yaml:"view_max_lines"`

	// StrictTokens rejects lines with more than three pieces.
	StrictTokens bool `yaml:"strict_tokens"`

	Log      LogConfig       `yaml:"log"`
	Server   ServerConfig    `yaml:"server"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnIssues fires only when invalid lines were found (default).
	WebhookTriggerOnIssues WebhookTrigger = "on_issues"
	// WebhookTriggerAlways fires after every analysis.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines an endpoint receiving analysis reports.
type WebhookConfig struct {
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token. $VAR and ${VAR} are expanded.
	Token string `yaml:"token,omitempty"`

	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout defaults to DefaultWebhookTimeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// ShouldFire reports whether the webhook fires for a run.
func (w WebhookConfig) ShouldFire(hasIssues bool) bool {
	switch w.Trigger {
	case WebhookTriggerAlways:
		return true
	case WebhookTriggerNever:
		return false
	default:
		return hasIssues
	}
}
