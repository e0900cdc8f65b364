package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/j0kz/mcp-wizard/internal/configfile"
	"github.com/j0kz/mcp-wizard/internal/generator"
	"github.com/j0kz/mcp-wizard/internal/wizard"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

// ErrAborted is returned when the user declines to continue after
// validation issues, so the process exits non-zero.
var ErrAborted = errors.New("setup aborted")

func runWizard(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	args := wizardArgs(cmd)

	res, err := deps.Wizard(out).Run(cmd.Context(), args)
	switch {
	case errors.Is(err, wizard.ErrCancelled):
		_, _ = fmt.Fprintln(out, "Setup cancelled.")
		return nil
	case errors.Is(err, wizard.ErrNonInteractive):
		return fmt.Errorf("%w\n\nExample: mcp-wizard --editor cursor --mcps smart-reviewer,test-generator", err)
	case errors.Is(err, configfile.ErrConfigExists):
		return err
	case err != nil:
		return fmt.Errorf("setup failed: %w", err)
	}

	switch res.Status {
	case wizard.StatusAborted:
		return ErrAborted
	case wizard.StatusDryRun:
		return printPreview(cmd, res)
	default:
		printCompleted(cmd, res)
		return nil
	}
}

// wizardArgs reads the wizard flags, filling empty ones from settings.
func wizardArgs(cmd *cobra.Command) wizard.Args {
	s := deps.settings()
	args := wizard.Args{
		Editor:   getStringFlag(cmd, "editor"),
		MCPs:     getStringFlag(cmd, "mcps"),
		Output:   getStringFlag(cmd, "output"),
		Force:    getBoolFlag(cmd, "force"),
		DryRun:   getBoolFlag(cmd, "dry-run"),
		Verbose:  getBoolFlag(cmd, "verbose"),
		Severity: s.Defaults.ReviewSeverity,
	}
	if args.Editor == "" {
		args.Editor = s.Defaults.Editor
	}
	if args.MCPs == "" && len(s.Defaults.MCPs) > 0 {
		args.MCPs = strings.Join(s.Defaults.MCPs, ",")
	}
	return args
}

func printCompleted(cmd *cobra.Command, res *wizard.Result) {
	details := []string{
		"Path:  " + res.Path,
		"Tools: " + strings.Join(res.Config.Names(), ", "),
	}
	if res.Backup != "" {
		details = append(details, "Backup: "+res.Backup)
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, deps.Theme.SuccessCard("MCP configuration written", details...))
	_, _ = fmt.Fprintf(out, "\nRestart %s to load the new MCP servers.\n", res.Selections.Editor.DisplayName())
}

func printPreview(cmd *cobra.Command, res *wizard.Result) error {
	md, err := previewMarkdown(res)
	if err != nil {
		return err
	}
	rendered, err := deps.Theme.RenderMarkdown(md)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// previewMarkdown describes a dry run as markdown.
func previewMarkdown(res *wizard.Result) (string, error) {
	data, err := generator.Marshal(res.Config)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Dry run\n\n")
	fmt.Fprintf(&b, "- **Editor:** %s\n", res.Selections.Editor.DisplayName())
	if res.Path != "" {
		fmt.Fprintf(&b, "- **Target:** `%s`\n", res.Path)
	} else {
		b.WriteString("- **Target:** unknown (use --output)\n")
	}
	fmt.Fprintf(&b, "- **Review severity:** %s\n", res.Selections.Preferences.ReviewSeverity)
	if tf := res.Selections.Preferences.TestFramework; tf != models.TestFrameworkNone {
		fmt.Fprintf(&b, "- **Test framework:** %s\n", tf)
	}
	if len(res.Issues) > 0 {
		b.WriteString("\n## Issues\n\n")
		for _, issue := range res.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	}
	b.WriteString("\n## Generated config\n\n```json\n")
	b.Write(data)
	b.WriteString("```\n")
	if res.Diff != "" {
		b.WriteString("\n## Changes\n\n```diff\n")
		b.WriteString(res.Diff)
		if !strings.HasSuffix(res.Diff, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}
	b.WriteString("\nNothing was installed or written.\n")
	return b.String(), nil
}
