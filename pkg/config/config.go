package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path yields the
// defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills zero values with
// defaults.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.StorePath) == "" {
		return errors.New("store_path: must not be empty")
	}
	if cfg.DefaultInput == "" {
		cfg.DefaultInput = DefaultInput
	}

	if cfg.ExportSuffix == "" {
		cfg.ExportSuffix = DefaultExportSuffix
	}
	if !strings.HasPrefix(cfg.ExportSuffix, ".") || strings.ContainsAny(cfg.ExportSuffix, `/\`) {
		return fmt.Errorf("export_suffix: %q must start with a dot and contain no path separators", cfg.ExportSuffix)
	}

	if cfg.MaxErrorsShown < 0 {
		return fmt.Errorf("max_errors_shown: must be >= 0, got %d", cfg.MaxErrorsShown)
	}
	if cfg.MaxErrorsShown == 0 {
		cfg.MaxErrorsShown = DefaultMaxErrorsShown
	}
	if cfg.ViewMaxLines < 0 {
		return fmt.Errorf("view_max_lines: must be >= 0, got %d", cfg.ViewMaxLines)
	}
	if cfg.ViewMaxLines == 0 {
		cfg.ViewMaxLines = DefaultViewMaxLines
	}

	if err := validateLog(&cfg.Log); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultServerAddress
	}

	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateLog(lc *LogConfig) error {
	if lc.Level == "" {
		lc.Level = DefaultLogLevel
	}
	switch strings.ToLower(lc.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid level %q (must be debug, info, warn, or error)", lc.Level)
	}

	if lc.Format == "" {
		lc.Format = DefaultLogFormat
	}
	switch lc.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (must be text or json)", lc.Format)
	}
	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("url must have a host")
	}

	wh.Token = expandEnvVar(wh.Token)

	switch wh.Trigger {
	case "":
		wh.Trigger = WebhookTriggerOnIssues
	case WebhookTriggerOnIssues, WebhookTriggerAlways, WebhookTriggerNever:
	default:
		return fmt.Errorf("invalid trigger %q (must be on_issues, always, or never)", wh.Trigger)
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands a whole-value $VAR or ${VAR} reference.
func expandEnvVar(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	if strings.HasPrefix(s, "$") && len(s) > 1 {
		return os.Getenv(s[1:])
	}
	return s
}
