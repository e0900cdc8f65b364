package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/j0kz/mcp-wizard/internal/core/project"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available MCP tools",
	Long:  "List every MCP tool with its npm package. Tools recommended for the current project are marked with *.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	recommended := recommendedFor(cmd.Context())

	var b strings.Builder
	for _, info := range models.Catalog() {
		mark := " "
		if slices.Contains(recommended, info.Name) {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %-22s %-34s %s\n", mark, info.Name, info.Package, info.Description)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}

// recommendedFor returns the recommendations for the project in Root, or
// the base set when detection fails.
func recommendedFor(ctx context.Context) []string {
	info, err := deps.ProjectDetector().DetectProject(ctx)
	if err != nil {
		deps.Logger.Debug("project detection failed", "error", err)
		info = models.UnknownProject()
	}
	return project.RecommendedMCPs(info)
}
