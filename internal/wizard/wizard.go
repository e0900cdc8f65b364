// Package wizard runs the configuration pipeline: detect the environment,
// gather selections, validate, then generate, install and write.
package wizard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/j0kz/mcp-wizard/internal/core/project"
	"github.com/j0kz/mcp-wizard/internal/validator"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Args are the CLI inputs of a wizard run.
type Args struct {
	Editor  string
	MCPs    string
	Output  string
	Force   bool
	DryRun  bool
	Verbose bool

	// Severity overrides the default review severity when valid.
	Severity models.Severity
}

// Status is the terminal state of a run.
type Status int

const (
	// StatusCompleted means the config was written.
	StatusCompleted Status = iota
	// StatusDryRun means the config was generated but nothing was changed.
	StatusDryRun
	// StatusAborted means the user declined after validation issues.
	StatusAborted
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusDryRun:
		return "dry-run"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes what a run did.
type Result struct {
	Status     Status
	Detected   models.Detected
	Selections models.Selections
	Issues     []string
	Config     models.GeneratedConfig
	// Path is the written file, or the target file in a dry run.
	Path string
	// Backup is set when an existing file was copied before overwrite.
	Backup string
	// Diff is the unified diff against the current file in a dry run.
	Diff string
}

// Wizard orchestrates one run over its Deps.
type Wizard struct {
	deps   Deps
	logger *slog.Logger
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithLogger sets the logger for the wizard.
func WithLogger(l *slog.Logger) Option {
	return func(w *Wizard) { w.logger = l }
}

// New creates a Wizard.
func New(deps Deps, opts ...Option) *Wizard {
	w := &Wizard{
		deps:   deps,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Detect probes the editor, project and test framework. Probe errors are
// logged and replaced with defaults so detection never fails the run.
func (w *Wizard) Detect(ctx context.Context) models.Detected {
	d := models.Detected{Project: models.UnknownProject()}

	if e, err := w.deps.Editors.DetectEditor(ctx); err != nil {
		w.logger.Warn("editor detection failed", "error", err)
	} else {
		d.Editor = e
	}

	if p, err := w.deps.Project.DetectProject(ctx); err != nil {
		w.logger.Warn("project detection failed", "error", err)
	} else {
		d.Project = p
	}

	if tf, err := w.deps.TestFramework.DetectTestFramework(ctx); err != nil {
		w.logger.Warn("test framework detection failed", "error", err)
	} else {
		d.TestFramework = tf
	}

	w.logger.Debug("detected environment",
		"editor", d.Editor,
		"language", d.Project.Language,
		"framework", d.Project.Framework,
		"package_manager", d.Project.PackageManager,
		"test_framework", d.TestFramework,
	)
	return d
}

// GatherSelections builds the selections from args when they name both an
// editor and MCPs. Otherwise the missing answers are prompted for.
func (w *Wizard) GatherSelections(ctx context.Context, args Args, detected models.Detected) (models.Selections, error) {
	mcps := SplitMCPs(args.MCPs)
	defaults := models.Preferences{
		ReviewSeverity:  models.DefaultSeverity,
		TestFramework:   detected.TestFramework,
		InstallGlobally: true,
	}
	if args.Severity.IsValid() {
		defaults.ReviewSeverity = args.Severity
	}

	if args.Editor != "" && len(mcps) > 0 {
		return models.Selections{
			Editor:      editorFromArg(args.Editor),
			MCPs:        mcps,
			Preferences: defaults,
		}, nil
	}

	var s models.Selections
	var err error

	if args.Editor != "" {
		s.Editor = editorFromArg(args.Editor)
	} else if s.Editor, err = w.deps.Prompter.SelectEditor(ctx, detected.Editor); err != nil {
		return models.Selections{}, fmt.Errorf("select editor: %w", err)
	}

	if len(mcps) > 0 {
		s.MCPs = mcps
	} else {
		picked, err := w.deps.Prompter.SelectMCPs(ctx, project.RecommendedMCPs(detected.Project))
		if err != nil {
			return models.Selections{}, fmt.Errorf("select mcps: %w", err)
		}
		s.MCPs = dedupe(picked)
	}

	prefs, err := w.deps.Prompter.Preferences(ctx, defaults)
	if err != nil {
		return models.Selections{}, fmt.Errorf("preferences: %w", err)
	}
	if prefs.ReviewSeverity == "" {
		prefs.ReviewSeverity = defaults.ReviewSeverity
	}
	if prefs.TestFramework == models.TestFrameworkNone {
		prefs.TestFramework = detected.TestFramework
	}
	s.Preferences = prefs

	return s, nil
}

// Run executes the full pipeline. A declined confirmation yields
// StatusAborted with a nil error.
func (w *Wizard) Run(ctx context.Context, args Args) (*Result, error) {
	res := &Result{Detected: w.Detect(ctx)}

	s, err := w.GatherSelections(ctx, args, res.Detected)
	if err != nil {
		return nil, err
	}
	res.Selections = s

	res.Issues = w.deps.Validator.Validate(ctx, s, res.Detected, validator.Options{
		OutputPath: args.Output,
		Force:      args.Force,
	})
	if len(res.Issues) > 0 {
		proceed, err := w.deps.Prompter.Confirm(ctx, res.Issues)
		if err != nil {
			return nil, fmt.Errorf("confirm: %w", err)
		}
		if !proceed {
			w.logger.Info("run aborted after validation issues", "issues", len(res.Issues))
			res.Status = StatusAborted
			return res, nil
		}
	}

	cfg, err := w.deps.Generator.Generate(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("generate config: %w", err)
	}
	res.Config = cfg

	if args.DryRun {
		return w.preview(res, args)
	}

	if s.Preferences.InstallGlobally {
		if err := w.deps.Installer.Install(ctx, s.MCPs, args.Verbose); err != nil {
			return nil, err
		}
	} else {
		w.logger.Debug("skipping global install")
	}

	if args.Force {
		if path, err := w.deps.Writer.Path(s.Editor, args.Output); err == nil {
			backup, err := w.deps.Writer.Backup(path)
			if err != nil {
				return nil, fmt.Errorf("backup config: %w", err)
			}
			res.Backup = backup
		}
	}

	path, err := w.deps.Writer.Write(cfg, s.Editor, args.Output, args.Force)
	if err != nil {
		return nil, err
	}
	res.Path = path
	res.Status = StatusCompleted
	w.logger.Info("config written", "path", path, "editor", s.Editor, "mcps", len(s.MCPs))
	return res, nil
}

func (w *Wizard) preview(res *Result, args Args) (*Result, error) {
	res.Status = StatusDryRun

	path, err := w.deps.Writer.Path(res.Selections.Editor, args.Output)
	if err != nil {
		w.logger.Debug("no target path for preview", "error", err)
		return res, nil
	}
	res.Path = path

	diff, err := w.deps.Writer.Diff(path, res.Config)
	if err != nil {
		return nil, fmt.Errorf("diff config: %w", err)
	}
	res.Diff = diff
	return res, nil
}

// SplitMCPs parses a comma separated MCP list, trimming entries and
// dropping empties and duplicates while keeping first-seen order.
func SplitMCPs(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return dedupe(parts)
}

func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || slices.Contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// editorFromArg normalizes a known editor name and otherwise keeps the
// raw value so validation can report it.
func editorFromArg(arg string) models.Editor {
	if e, ok := models.ParseEditor(arg); ok {
		return e
	}
	return models.Editor(strings.TrimSpace(arg))
}
