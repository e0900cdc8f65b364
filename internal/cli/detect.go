package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/j0kz/mcp-wizard/internal/core/project"
	"github.com/j0kz/mcp-wizard/internal/ui"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected editors, project and test framework",
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().Bool("json", false, "Print the report as JSON")
}

// detectReport is the JSON form of the detect command.
type detectReport struct {
	Editors       []models.Editor      `json:"editors"`
	Project       models.ProjectInfo   `json:"project"`
	TestFramework models.TestFramework `json:"test_framework"`
	Recommended   []string             `json:"recommended"`
}

func runDetect(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	editors, err := deps.EditorDetector().DetectInstalledEditors(ctx)
	if err != nil {
		return fmt.Errorf("detect editors: %w", err)
	}

	pd := deps.ProjectDetector()
	info, err := pd.DetectProject(ctx)
	if err != nil {
		return fmt.Errorf("detect project: %w", err)
	}
	tf, err := pd.DetectTestFramework(ctx)
	if err != nil {
		return fmt.Errorf("detect test framework: %w", err)
	}

	report := detectReport{
		Editors:       editors,
		Project:       info,
		TestFramework: tf,
		Recommended:   project.RecommendedMCPs(info),
	}
	if report.Editors == nil {
		report.Editors = []models.Editor{}
	}

	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	_, _ = fmt.Fprintln(out, deps.Theme.InfoCard("Detected environment", deps.Theme.KeyValueLines(detectPairs(report))))
	return nil
}

func detectPairs(r detectReport) []ui.KeyValue {
	names := make([]string, len(r.Editors))
	for i, e := range r.Editors {
		names[i] = e.DisplayName()
	}
	editors := "none"
	if len(names) > 0 {
		editors = strings.Join(names, ", ")
	}

	framework := r.Project.Framework
	if framework == "" {
		framework = "none"
	}
	tests := string(r.TestFramework)
	if tests == "" {
		tests = "none"
	}

	return []ui.KeyValue{
		{Key: "Editors", Value: editors},
		{Key: "Language", Value: r.Project.Language},
		{Key: "Framework", Value: framework},
		{Key: "Package manager", Value: string(r.Project.PackageManager)},
		{Key: "Test framework", Value: tests},
		{Key: "Recommended", Value: strings.Join(r.Recommended, ", ")},
	}
}
