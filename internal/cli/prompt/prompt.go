// Package prompt implements the wizard's interactive questions with huh.
// Each question runs as its own huh.Form.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/huh"

	"github.com/j0kz/mcp-wizard/internal/ui"
	"github.com/j0kz/mcp-wizard/internal/wizard"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Prompter asks the wizard's questions on the terminal.
type Prompter struct {
	headless *ui.HeadlessManager
	theme    *ui.Theme
	out      io.Writer
	form     *huh.Theme
}

// New creates a Prompter. Validation issues are printed to out.
func New(hm *ui.HeadlessManager, theme *ui.Theme, out io.Writer) *Prompter {
	p := &Prompter{headless: hm, theme: theme, out: out}
	if !theme.NoColor {
		p.form = newWizardTheme()
	} else {
		p.form = huh.ThemeBase()
	}
	return p
}

// SelectEditor asks which editor to configure, defaulting to detected.
func (p *Prompter) SelectEditor(ctx context.Context, detected models.Editor) (models.Editor, error) {
	if p.headless.IsHeadless() {
		return "", wizard.ErrNonInteractive
	}

	selected := detected
	if !selected.IsValid() {
		selected = models.AllEditors()[0]
	}
	sel := huh.NewSelect[models.Editor]().
		Title("Which editor do you want to configure?").
		Description(detectedHint(detected)).
		Options(editorOptions(detected)...).
		Value(&selected)

	if err := p.run(ctx, sel); err != nil {
		return "", err
	}
	return selected, nil
}

// SelectMCPs asks which MCP tools to enable with recommended ones checked.
func (p *Prompter) SelectMCPs(ctx context.Context, recommended []string) ([]string, error) {
	if p.headless.IsHeadless() {
		return nil, wizard.ErrNonInteractive
	}

	picked := preselected(recommended)
	ms := huh.NewMultiSelect[string]().
		Title("Select MCP tools").
		Description("Recommended tools for this project are pre-selected.").
		Options(mcpOptions()...).
		Value(&picked)

	if err := p.run(ctx, ms); err != nil {
		return nil, err
	}
	return picked, nil
}

// Preferences asks for review severity, test framework and install mode.
func (p *Prompter) Preferences(ctx context.Context, defaults models.Preferences) (models.Preferences, error) {
	if p.headless.IsHeadless() {
		return models.Preferences{}, wizard.ErrNonInteractive
	}

	prefs := defaults
	if !prefs.ReviewSeverity.IsValid() {
		prefs.ReviewSeverity = models.DefaultSeverity
	}

	fields := []huh.Field{
		huh.NewSelect[models.Severity]().
			Title("Code review severity").
			Options(severityOptions(prefs.ReviewSeverity)...).
			Value(&prefs.ReviewSeverity),
		huh.NewSelect[models.TestFramework]().
			Title("Test framework").
			Options(testFrameworkOptions(prefs.TestFramework)...).
			Value(&prefs.TestFramework),
		huh.NewConfirm().
			Title("Install MCP packages globally with npm?").
			Affirmative("Yes").
			Negative("No").
			Value(&prefs.InstallGlobally),
	}
	for _, f := range fields {
		if err := p.run(ctx, f); err != nil {
			return models.Preferences{}, err
		}
	}
	return prefs, nil
}

// Confirm prints issues and asks whether to continue. Headless runs never
// continue past issues.
func (p *Prompter) Confirm(ctx context.Context, issues []string) (bool, error) {
	_, _ = fmt.Fprintln(p.out, p.theme.Issues(issues))
	if p.headless.IsHeadless() {
		return false, nil
	}

	proceed := false
	c := huh.NewConfirm().
		Title("Continue anyway?").
		Affirmative("Continue").
		Negative("Abort").
		Value(&proceed)
	if err := p.run(ctx, c); err != nil {
		return false, err
	}
	return proceed, nil
}

func (p *Prompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.form).
		WithAccessible(false)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return wizard.ErrCancelled
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

func detectedHint(e models.Editor) string {
	if !e.IsValid() {
		return "No editor detected."
	}
	return fmt.Sprintf("Detected %s.", e.DisplayName())
}

// editorOptions lists editors with the detected one first so the default
// is visible without scrolling.
func editorOptions(detected models.Editor) []huh.Option[models.Editor] {
	editors := models.AllEditors()
	if i := slices.Index(editors, detected); i > 0 {
		editors = slices.Concat([]models.Editor{detected}, editors[:i], editors[i+1:])
	}
	opts := make([]huh.Option[models.Editor], len(editors))
	for i, e := range editors {
		label := e.DisplayName()
		if e == detected {
			label += " (detected)"
		}
		opts[i] = huh.NewOption(label, e)
	}
	return opts
}

func mcpOptions() []huh.Option[string] {
	catalog := models.Catalog()
	opts := make([]huh.Option[string], len(catalog))
	for i, info := range catalog {
		opts[i] = huh.NewOption(info.Name+" - "+info.Description, info.Name)
	}
	return opts
}

// preselected keeps the recommended names that exist in the catalog.
func preselected(recommended []string) []string {
	out := make([]string, 0, len(recommended))
	for _, name := range recommended {
		if _, ok := models.LookupMCP(name); ok && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

func severityOptions(def models.Severity) []huh.Option[models.Severity] {
	labels := map[models.Severity]string{
		models.SeverityLenient:  "Lenient - only critical findings",
		models.SeverityModerate: "Moderate - balanced",
		models.SeverityStrict:   "Strict - report everything",
	}
	return defaultFirst(models.ValidSeverities(), def, func(s models.Severity) string { return labels[s] })
}

func testFrameworkOptions(def models.TestFramework) []huh.Option[models.TestFramework] {
	frameworks := append([]models.TestFramework{models.TestFrameworkNone}, models.ValidTestFrameworks()...)
	return defaultFirst(frameworks, def, func(tf models.TestFramework) string {
		if tf == models.TestFrameworkNone {
			return "None"
		}
		return string(tf)
	})
}

func defaultFirst[T comparable](values []T, def T, label func(T) string) []huh.Option[T] {
	if i := slices.Index(values, def); i > 0 {
		values = slices.Concat([]T{def}, values[:i], values[i+1:])
	}
	opts := make([]huh.Option[T], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(label(v), v)
	}
	return opts
}
