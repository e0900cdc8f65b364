package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/j0kz/mcp-wizard/internal/editor"
	"github.com/j0kz/mcp-wizard/internal/ui"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the config file path for each editor",
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	pathsCmd.Flags().String("os", "", "Show paths for another OS: linux, darwin, windows")
}

func runPaths(cmd *cobra.Command, _ []string) error {
	env := deps.Env
	if goos := getStringFlag(cmd, "os"); goos != "" {
		switch goos {
		case "linux", "darwin":
			env.GOOS = goos
		case "windows":
			env.GOOS = goos
			if env.AppData == "" {
				env.AppData = filepath.Join(env.Home, "AppData", "Roaming")
			}
		default:
			return fmt.Errorf("unsupported --os %q: use linux, darwin or windows", goos)
		}
	}

	editors := models.AllEditors()
	pairs := make([]ui.KeyValue, 0, len(editors))
	for _, e := range editors {
		path, _ := editor.PathFor(e, env)
		pairs = append(pairs, ui.KeyValue{Key: e.DisplayName(), Value: path})
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.KeyValueLines(pairs))
	return nil
}
