package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Settings.Path())
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings, including environment overrides",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing settings file")
	configCmd.AddCommand(initCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(deps.settings())
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := deps.Settings.Path()
	if deps.Settings.Exists() && !getBoolFlag(cmd, "force") {
		return fmt.Errorf("settings file already exists at %s. Use --force to overwrite", path)
	}
	deps.Settings.Reset()
	if err := deps.Settings.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.SuccessCard("Settings written", "Path: "+path))
	return nil
}
