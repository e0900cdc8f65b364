package config

import (
	"time"

	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Settings is the content of config.yaml.
type Settings struct {
	Defaults DefaultsSettings `yaml:"defaults"`
	Install  InstallSettings  `yaml:"install"`
	UI       UISettings       `yaml:"ui"`
	Log      LogSettings      `yaml:"log"`
}

// DefaultsSettings fill CLI flags the user did not pass.
type DefaultsSettings struct {
	Editor         string          `yaml:"editor,omitempty"`
	MCPs           []string        `yaml:"mcps,omitempty"`
	ReviewSeverity models.Severity `yaml:"review_severity"`
}

// InstallSettings control the npm invocation.
type InstallSettings struct {
	Npm      string `yaml:"npm"`
	Registry string `yaml:"registry,omitempty"`
	// Retries is how many times a failed install is retried.
	Retries int `yaml:"retries"`
	// RetryDelay is the wait before the first retry; it doubles each time.
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// UISettings control terminal output.
type UISettings struct {
	NoColor bool `yaml:"no_color"`
}

// LogSettings control the slog handler used without --verbose.
type LogSettings struct {
	// Level is one of debug, info, warn, error. Empty disables logging.
	Level string `yaml:"level,omitempty"`
	// Format is text or json.
	Format string `yaml:"format"`
}
