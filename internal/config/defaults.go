package config

import (
	"time"

	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Default values for settings.
const (
	DefaultNpm       = "npm"
	DefaultLogFormat = "text"

	DefaultRetries    = 1
	DefaultRetryDelay = 2 * time.Second
	// MaxRetries bounds install.retries.
	MaxRetries = 10

	// DirName is the directory under the user config dir.
	DirName = "mcp-wizard"
	// FileName is the settings file name.
	FileName = "config.yaml"
)

// NewDefaultSettings returns settings with every compiled default applied.
func NewDefaultSettings() *Settings {
	return &Settings{
		Defaults: DefaultsSettings{
			ReviewSeverity: models.DefaultSeverity,
		},
		Install: InstallSettings{
			Npm:        DefaultNpm,
			Retries:    DefaultRetries,
			RetryDelay: DefaultRetryDelay,
		},
		Log: LogSettings{
			Format: DefaultLogFormat,
		},
	}
}

// applyDefaults fills zero values left by a partial settings file.
func applyDefaults(s *Settings) {
	if s.Defaults.ReviewSeverity == "" {
		s.Defaults.ReviewSeverity = models.DefaultSeverity
	}
	if s.Install.Npm == "" {
		s.Install.Npm = DefaultNpm
	}
	if s.Log.Format == "" {
		s.Log.Format = DefaultLogFormat
	}
}
