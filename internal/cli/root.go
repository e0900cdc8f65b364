package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/j0kz/mcp-wizard/internal/config"
	"github.com/j0kz/mcp-wizard/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "mcp-wizard",
	Short: "Configure MCP tool servers for your editor",
	Long: `mcp-wizard detects your editor, project and test framework, then
writes Model Context Protocol server configuration for the @j0kz MCP tools.

Run without flags for an interactive setup, or pass --editor and --mcps
to configure non-interactively.`,
	Example: `  mcp-wizard
  mcp-wizard --editor cursor --mcps smart-reviewer,test-generator
  mcp-wizard --editor vscode --mcps smart-reviewer --dry-run`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: configure,
	RunE:              runWizard,
}

// Execute initializes dependencies and runs the root command. An interrupt
// cancels the command context.
func Execute() error {
	InitDependencies()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("mcp-wizard %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Settings file (default: $MCP_WIZARD_CONFIG or <user config dir>/mcp-wizard/config.yaml)")
	pf.Bool("verbose", false, "Show detailed output and debug logs")
	pf.Bool("no-color", false, "Disable colored output")

	f := rootCmd.Flags()
	f.String("editor", "", "Editor to configure: claude-code, cursor, windsurf, vscode, roo, qoder")
	f.String("mcps", "", "Comma separated MCP tools to enable")
	f.String("output", "", "Write the config to this path instead of the editor default")
	f.Bool("force", false, "Overwrite an existing config file (a backup is kept)")
	f.Bool("dry-run", false, "Preview the config without installing or writing")
}

// configure loads settings and applies the global flags before any command.
func configure(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		InitDependencies()
	}
	path := getStringFlag(cmd, "config")
	verbose := getBoolFlag(cmd, "verbose")
	noColor := getBoolFlag(cmd, "no-color")
	err := deps.Configure(path, verbose, noColor, cmd.ErrOrStderr())
	if err != nil && isConfigCommand(cmd) && invalidSettings(err) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\nUsing default settings.\n", err)
		return nil
	}
	return err
}

// isConfigCommand reports whether cmd is config or one of its subcommands.
// These run on defaults when the settings file is invalid.
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

func invalidSettings(err error) bool {
	return errors.Is(err, config.ErrInvalidConfig) || errors.Is(err, config.ErrInvalidYAML)
}

func getStringFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
