//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package wizard

import (
	"context"

	"github.com/j0kz/mcp-wizard/internal/validator"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

// EditorDetector finds the user's editor.
type EditorDetector interface {
	DetectEditor(ctx context.Context) (models.Editor, error)
}

// ProjectDetector inspects the working directory.
type ProjectDetector interface {
	DetectProject(ctx context.Context) (models.ProjectInfo, error)
}

// TestFrameworkDetector finds the project's test runner.
type TestFrameworkDetector interface {
	DetectTestFramework(ctx context.Context) (models.TestFramework, error)
}

// Generator builds the editor config for a set of selections.
type Generator interface {
	Generate(ctx context.Context, s models.Selections) (models.GeneratedConfig, error)
}

// Validator reports problems with the selections.
type Validator interface {
	Validate(ctx context.Context, s models.Selections, detected models.Detected, opts validator.Options) []string
}

// Installer installs MCP packages.
type Installer interface {
	Install(ctx context.Context, names []string, verbose bool) error
}

// Writer persists the generated config.
type Writer interface {
	Path(editor models.Editor, customPath string) (string, error)
	Write(cfg models.GeneratedConfig, editor models.Editor, customPath string, force bool) (string, error)
	Backup(path string) (string, error)
	Diff(path string, cfg models.GeneratedConfig) (string, error)
}

// Prompter asks the user for anything the flags did not settle.
type Prompter interface {
	SelectEditor(ctx context.Context, detected models.Editor) (models.Editor, error)
	SelectMCPs(ctx context.Context, recommended []string) ([]string, error)
	Preferences(ctx context.Context, defaults models.Preferences) (models.Preferences, error)
	Confirm(ctx context.Context, issues []string) (bool, error)
}

// Deps holds every collaborator the wizard calls. All fields are required.
type Deps struct {
	Editors       EditorDetector
	Project       ProjectDetector
	TestFramework TestFrameworkDetector
	Generator     Generator
	Validator     Validator
	Installer     Installer
	Writer        Writer
	Prompter      Prompter
}
