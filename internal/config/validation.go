package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/j0kz/mcp-wizard/pkg/models"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the settings for correctness and returns every problem
// as a *ValidationErrors.
func Validate(s *Settings) error {
	var errs []ValidationError

	errs = append(errs, validateDefaults(&s.Defaults)...)
	errs = append(errs, validateInstall(&s.Install)...)
	errs = append(errs, validateLog(&s.Log)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateDefaults(d *DefaultsSettings) []ValidationError {
	var errs []ValidationError

	if d.Editor != "" {
		if _, ok := models.ParseEditor(d.Editor); !ok {
			errs = append(errs, ValidationError{
				Field:   "defaults.editor",
				Message: fmt.Sprintf("must be one of: %s", strings.Join(editorStrings(), ", ")),
				Value:   d.Editor,
				Wrapped: ErrInvalidEditor,
			})
		}
	}

	for i, name := range d.MCPs {
		if _, ok := models.LookupMCP(name); !ok {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("defaults.mcps[%d]", i),
				Message: "not in the MCP catalog",
				Value:   name,
				Wrapped: ErrUnknownMCP,
			})
		}
	}

	if d.ReviewSeverity != "" && !d.ReviewSeverity.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "defaults.review_severity",
			Message: "must be one of: lenient, moderate, strict",
			Value:   string(d.ReviewSeverity),
			Wrapped: ErrInvalidSeverity,
		})
	}

	return errs
}

func validateInstall(in *InstallSettings) []ValidationError {
	var errs []ValidationError
	if in.Registry != "" {
		u, err := url.Parse(in.Registry)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "install.registry",
				Message: "must be an http or https URL",
				Value:   in.Registry,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	if in.Retries < 0 || in.Retries > MaxRetries {
		errs = append(errs, ValidationError{
			Field:   "install.retries",
			Message: fmt.Sprintf("must be between 0 and %d", MaxRetries),
			Value:   in.Retries,
			Wrapped: ErrInvalidConfig,
		})
	}
	if in.RetryDelay < 0 {
		errs = append(errs, ValidationError{
			Field:   "install.retry_delay",
			Message: "must not be negative",
			Value:   in.RetryDelay,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func validateLog(l *LogSettings) []ValidationError {
	var errs []ValidationError
	if l.Level != "" && !slices.Contains(validLogLevels, l.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   l.Level,
			Wrapped: ErrInvalidConfig,
		})
	}
	if !slices.Contains(validLogFormats, l.Format) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
			Value:   l.Format,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func editorStrings() []string {
	editors := models.AllEditors()
	out := make([]string, len(editors))
	for i, e := range editors {
		out[i] = string(e)
	}
	return out
}
