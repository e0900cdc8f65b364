package editor

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/j0kz/mcp-wizard/internal/shell"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

// probeSpec lists the ways an editor can be recognized on disk or PATH.
type probeSpec struct {
	homeDirs []string // relative to the home directory
	osDir    string   // relative to the OS application dirs
	binary   string   // CLI answering --version, empty if none
}

var probes = map[models.Editor]probeSpec{
	models.EditorClaudeCode: {homeDirs: []string{".claude", filepath.Join(".config", "claude-code")}, osDir: "Claude", binary: "claude"},
	models.EditorCursor:     {homeDirs: []string{".cursor"}, osDir: "Cursor", binary: "cursor"},
	models.EditorWindsurf:   {homeDirs: []string{filepath.Join(".codeium", "windsurf")}, osDir: "Windsurf", binary: "windsurf"},
	models.EditorVSCode:     {homeDirs: []string{".vscode", ".continue"}, osDir: "Code", binary: "code"},
	models.EditorRoo:        {homeDirs: []string{".roo"}, osDir: filepath.Join("Code", "User", "globalStorage", rooExtensionID)},
	models.EditorQoder:      {homeDirs: []string{".qoder"}, osDir: "Qoder", binary: "qoder"},
}

// Detector probes the filesystem and PATH for installed editors.
// All probes are read-only.
type Detector struct {
	env       Env
	dirExists func(string) bool
	run       shell.RunFunc
	logger    *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithEnv overrides the process environment used to build probe paths.
func WithEnv(env Env) Option {
	return func(d *Detector) { d.env = env }
}

// WithDirExists sets the directory probe (used for testing).
func WithDirExists(fn func(string) bool) Option {
	return func(d *Detector) { d.dirExists = fn }
}

// WithRunFunc sets the command runner used for CLI probes (used for testing).
func WithRunFunc(fn shell.RunFunc) Option {
	return func(d *Detector) { d.run = fn }
}

// WithLogger sets the logger for the detector.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) { d.logger = l }
}

// NewDetector creates a Detector for the current environment.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		env:       CurrentEnv(),
		dirExists: dirExists,
		run:       shell.DefaultRun,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectEditor returns the first installed editor in priority order, or
// the empty Editor when none is found. Only context cancellation is
// reported as an error.
func (d *Detector) DetectEditor(ctx context.Context) (models.Editor, error) {
	for _, e := range models.AllEditors() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if d.isInstalled(ctx, e) {
			d.logger.Debug("editor detected", "editor", e)
			return e, nil
		}
	}
	d.logger.Debug("no editor detected")
	return "", nil
}

// DetectInstalledEditors returns every installed editor in priority order.
func (d *Detector) DetectInstalledEditors(ctx context.Context) ([]models.Editor, error) {
	var found []models.Editor
	for _, e := range models.AllEditors() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if d.isInstalled(ctx, e) {
			found = append(found, e)
		}
	}
	d.logger.Debug("installed editors detected", "count", len(found))
	return found, nil
}

func (d *Detector) isInstalled(ctx context.Context, e models.Editor) bool {
	spec, ok := probes[e]
	if !ok {
		return false
	}

	// (a) well-known dot directories under home
	if d.env.Home != "" {
		for _, rel := range spec.homeDirs {
			if d.dirExists(filepath.Join(d.env.Home, rel)) {
				return true
			}
		}
	}

	// (b) OS-specific application directories
	for _, dir := range d.osDirs(spec.osDir) {
		if d.dirExists(dir) {
			return true
		}
	}

	// (c) CLI binary on PATH
	if spec.binary != "" {
		_, err := d.run(ctx, spec.binary, "--version")
		if err == nil {
			return true
		}
		d.logger.Debug("cli probe failed", "binary", spec.binary, "error", err)
	}
	return false
}

// osDirs returns the OS-specific candidate directories for name.
func (d *Detector) osDirs(name string) []string {
	if name == "" {
		return nil
	}
	switch d.env.GOOS {
	case "windows":
		var dirs []string
		if d.env.AppData != "" {
			dirs = append(dirs, filepath.Join(d.env.AppData, name))
		}
		if d.env.LocalAppData != "" {
			dirs = append(dirs, filepath.Join(d.env.LocalAppData, "Programs", name))
		}
		return dirs
	case "darwin":
		if d.env.Home == "" {
			return nil
		}
		return []string{filepath.Join(d.env.Home, "Library", "Application Support", name)}
	default:
		if d.env.Home == "" {
			return nil
		}
		return []string{filepath.Join(d.env.Home, ".config", name)}
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
