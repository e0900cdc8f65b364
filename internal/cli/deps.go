// Package cli provides the Cobra command tree and dependency injection
// wiring for mcp-wizard. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/j0kz/mcp-wizard/internal/cli/prompt"
	"github.com/j0kz/mcp-wizard/internal/config"
	"github.com/j0kz/mcp-wizard/internal/configfile"
	"github.com/j0kz/mcp-wizard/internal/core/project"
	"github.com/j0kz/mcp-wizard/internal/editor"
	"github.com/j0kz/mcp-wizard/internal/generator"
	"github.com/j0kz/mcp-wizard/internal/installer"
	"github.com/j0kz/mcp-wizard/internal/resilience"
	"github.com/j0kz/mcp-wizard/internal/shell"
	"github.com/j0kz/mcp-wizard/internal/ui"
	"github.com/j0kz/mcp-wizard/internal/validator"
	"github.com/j0kz/mcp-wizard/internal/wizard"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Dependencies holds the process-level services used by CLI commands.
// Domain components are built from these on demand so every command sees
// the same environment, command runner and settings.
type Dependencies struct {
	Settings *config.Manager
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger

	// Env locates editor directories and config files.
	Env editor.Env
	// Root is the project directory. Empty means the working directory.
	Root string
	Run  shell.RunFunc
	Exec shell.ExecFunc
	Now  func() time.Time
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates the default dependencies. Logging is discarded
// until Configure applies flags and settings.
func InitDependencies() {
	deps = &Dependencies{
		Settings: config.NewManager(),
		Theme:    ui.NewTheme(false),
		Headless: ui.NewHeadlessManager(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Env:      editor.CurrentEnv(),
		Run:      shell.DefaultRun,
		Exec:     shell.DefaultExec,
		Now:      time.Now,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// Configure loads the settings file and applies logging and color options.
// When loading fails the flags are still applied and settings() falls back
// to compiled defaults.
func (d *Dependencies) Configure(settingsPath string, verbose, noColor bool, logOut io.Writer) error {
	s, err := d.Settings.Load(settingsPath)
	if err != nil {
		d.Logger = newLogger(verbose, config.LogSettings{}, logOut)
		if noColor {
			d.Theme = ui.NewTheme(true)
		}
		return fmt.Errorf("load settings: %w", err)
	}
	d.Logger = newLogger(verbose, s.Log, logOut)
	if noColor || s.UI.NoColor {
		d.Theme = ui.NewTheme(true)
	}
	d.Logger.Debug("settings loaded", "path", d.Settings.Path(), "exists", d.Settings.Exists())
	return nil
}

// settings returns the loaded settings or compiled defaults.
func (d *Dependencies) settings() *config.Settings {
	if s := d.Settings.Get(); s != nil {
		return s
	}
	return config.NewDefaultSettings()
}

func (d *Dependencies) pathFor(e models.Editor) (string, bool) {
	return editor.PathFor(e, d.Env)
}

// EditorDetector builds the editor detector.
func (d *Dependencies) EditorDetector() *editor.Detector {
	return editor.NewDetector(
		editor.WithEnv(d.Env),
		editor.WithRunFunc(d.Run),
		editor.WithLogger(d.Logger),
	)
}

// ProjectDetector builds the project detector for Root.
func (d *Dependencies) ProjectDetector() *project.Detector {
	return project.NewDetector(d.Root, d.Logger)
}

// Validator builds the selection validator.
func (d *Dependencies) Validator() *validator.Validator {
	return validator.New(
		validator.WithRunFunc(d.Run),
		validator.WithPathFunc(d.pathFor),
		validator.WithLogger(d.Logger),
	)
}

// Installer builds the npm installer. Progress and warnings go to out.
func (d *Dependencies) Installer(out io.Writer) *installer.Installer {
	s := d.settings()
	progress := ui.NewProgress(d.Theme, d.Headless, out)
	return installer.New(
		installer.WithNpm(s.Install.Npm),
		installer.WithRegistry(s.Install.Registry),
		installer.WithRetry(resilience.Policy{Retries: s.Install.Retries, BaseDelay: s.Install.RetryDelay}),
		installer.WithExecFunc(d.Exec),
		installer.WithSpinner(func(title string, plain bool) installer.Spinner {
			if plain {
				return progress.Plain(title)
			}
			return progress.Spinner(title)
		}),
		installer.WithOutput(out),
		installer.WithLogger(d.Logger),
	)
}

// Writer builds the config file writer.
func (d *Dependencies) Writer() *configfile.Writer {
	opts := []configfile.Option{
		configfile.WithPathFunc(d.pathFor),
		configfile.WithLogger(d.Logger),
	}
	if d.Now != nil {
		opts = append(opts, configfile.WithClock(d.Now))
	}
	return configfile.New(opts...)
}

// Wizard wires the orchestrator. Prompts and progress are written to out.
func (d *Dependencies) Wizard(out io.Writer) *wizard.Wizard {
	pd := d.ProjectDetector()
	return wizard.New(wizard.Deps{
		Editors:       d.EditorDetector(),
		Project:       pd,
		TestFramework: pd,
		Generator:     generator.New(),
		Validator:     d.Validator(),
		Installer:     d.Installer(out),
		Writer:        d.Writer(),
		Prompter:      prompt.New(d.Headless, d.Theme, out),
	}, wizard.WithLogger(d.Logger))
}

// newLogger returns a debug text logger on w when verbose, a logger at the
// configured level when set, and a discard logger otherwise.
func newLogger(verbose bool, s config.LogSettings, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	var level slog.Level
	switch {
	case verbose:
		level = slog.LevelDebug
	case s.Level != "":
		if err := level.UnmarshalText([]byte(s.Level)); err != nil {
			level = slog.LevelInfo
		}
	default:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := &slog.HandlerOptions{Level: level}
	if s.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
