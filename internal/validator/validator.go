// Package validator checks wizard selections against the local environment.
package validator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/j0kz/mcp-wizard/internal/editor"
	"github.com/j0kz/mcp-wizard/internal/shell"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

// MinNodeMajor is the oldest Node.js major version the MCP tools run on.
const MinNodeMajor = 18

// Options tune the checks for the current invocation.
type Options struct {
	// OutputPath replaces the editor's default path for the existence check.
	OutputPath string
	// Force suppresses the existing-file issue.
	Force bool
}

// Validator reports environment problems as human-readable issues.
type Validator struct {
	run     shell.RunFunc
	pathFor func(models.Editor) (string, bool)
	exists  func(string) bool
	logger  *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithRunFunc sets the command runner used for the Node.js probe.
func WithRunFunc(fn shell.RunFunc) Option {
	return func(v *Validator) { v.run = fn }
}

// WithPathFunc sets the editor config path resolver.
func WithPathFunc(fn func(models.Editor) (string, bool)) Option {
	return func(v *Validator) { v.pathFor = fn }
}

// WithExistsFunc sets the file existence probe.
func WithExistsFunc(fn func(string) bool) Option {
	return func(v *Validator) { v.exists = fn }
}

// WithLogger sets the logger for the validator.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		run:     shell.DefaultRun,
		pathFor: editor.ConfigPath,
		exists:  pathExists,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every check independently and returns all issues found.
// An empty result means the selections are safe to apply. It never fails:
// probe errors become issues.
func (v *Validator) Validate(ctx context.Context, s models.Selections, detected models.Detected, opts Options) []string {
	v.logger.Debug("validating selections",
		"editor", s.Editor,
		"detected_editor", detected.Editor,
		"mcps", len(s.MCPs),
	)

	var issues []string

	if len(s.MCPs) == 0 {
		issues = append(issues, "No MCP tools selected. Select at least one tool to configure.")
	}

	if issue := v.checkNode(ctx); issue != "" {
		issues = append(issues, issue)
	}

	path, known := v.pathFor(s.Editor)
	if !known {
		issues = append(issues, fmt.Sprintf("Unknown editor: %s", s.Editor))
	}
	if opts.OutputPath != "" {
		path = opts.OutputPath
	}
	if path != "" && !opts.Force && v.exists(path) {
		issues = append(issues, fmt.Sprintf("Config file already exists at %s. Use --force to overwrite.", path))
	}

	v.logger.Debug("validation finished", "issues", len(issues))
	return issues
}

func (v *Validator) checkNode(ctx context.Context) string {
	out, err := v.run(ctx, "node", "--version")
	if err != nil {
		v.logger.Debug("node probe failed", "error", err)
		return fmt.Sprintf("Node.js %d or newer is required (node was not found on PATH).", MinNodeMajor)
	}
	major, ok := ParseNodeMajor(out)
	if !ok {
		return fmt.Sprintf("Could not determine Node.js version from %q.", out)
	}
	if major < MinNodeMajor {
		return fmt.Sprintf("Node.js %d or newer is required (found %s).", MinNodeMajor, strings.TrimSpace(out))
	}
	return ""
}

// ParseNodeMajor extracts the major version from `node --version` output
// such as "v20.11.1".
func ParseNodeMajor(version string) (int, bool) {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	majorStr, _, _ := strings.Cut(v, ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return 0, false
	}
	return major, true
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
