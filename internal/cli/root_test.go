package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/j0kz/mcp-wizard/internal/config"
	"github.com/j0kz/mcp-wizard/internal/wizard"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

func TestRootCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"editor", "mcps", "output", "force", "dry-run"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("root command should have --%s flag", name)
		}
	}
	for _, name := range []string{"config", "verbose", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have persistent --%s flag", name)
		}
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := map[string]bool{"detect": false, "list": false, "paths": false, "config": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}
}

func TestRun_WritesConfig(t *testing.T) {
	env := setupTestDeps(t)

	out, err := execute(t, "--editor", "cursor", "--mcps", "smart-reviewer, test-generator")
	if err != nil {
		t.Fatalf("execute() error = %v\n%s", err, out)
	}

	path := filepath.Join(env.Home, ".cursor", "mcp_config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	var cfg models.GeneratedConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("invalid config JSON: %v", err)
	}
	if cfg.Key != models.KeyMCPServers || len(cfg.Servers) != 2 {
		t.Errorf("config = %+v", cfg)
	}

	if len(env.Execs) != 2 || env.Execs[0].Name != "npm" {
		t.Errorf("installs = %v, want two npm runs", env.Execs)
	}
	if !strings.Contains(out, "MCP configuration written") || !strings.Contains(out, "Restart Cursor") {
		t.Errorf("output missing success card:\n%s", out)
	}
}

func TestRun_DryRun(t *testing.T) {
	env := setupTestDeps(t)

	out, err := execute(t, "--editor", "vscode", "--mcps", "smart-reviewer", "--dry-run")
	if err != nil {
		t.Fatalf("execute() error = %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(env.Home, ".continue", "config.json")); !os.IsNotExist(err) {
		t.Error("dry run wrote the config file")
	}
	if len(env.Execs) != 0 {
		t.Errorf("dry run ran %d installs", len(env.Execs))
	}
	for _, want := range []string{"Dry run", "smart-reviewer", "Nothing was installed or written"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestRun_ExistingConfigAbortsHeadless(t *testing.T) {
	env := setupTestDeps(t)
	path := filepath.Join(env.Home, ".cursor", "mcp_config.json")
	writeFile(t, path, "original")

	out, err := execute(t, "--editor", "cursor", "--mcps", "smart-reviewer")
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("execute() error = %v, want ErrAborted\n%s", err, out)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("issue not printed:\n%s", out)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Error("aborted run modified the config file")
	}
	if len(env.Execs) != 0 {
		t.Errorf("aborted run ran %d installs", len(env.Execs))
	}
}

func TestRun_ForceKeepsBackup(t *testing.T) {
	env := setupTestDeps(t)
	path := filepath.Join(env.Home, ".cursor", "mcp_config.json")
	writeFile(t, path, "original")

	out, err := execute(t, "--editor", "cursor", "--mcps", "smart-reviewer", "--force")
	if err != nil {
		t.Fatalf("execute() error = %v\n%s", err, out)
	}

	backup := path + ".backup." + strconv.FormatInt(fixedNow.UnixMilli(), 10)
	data, err := os.ReadFile(backup)
	if err != nil || string(data) != "original" {
		t.Errorf("backup = %q, %v", data, err)
	}
	if !strings.Contains(out, "Backup: "+backup) {
		t.Errorf("output missing backup path:\n%s", out)
	}
}

func TestRun_UnknownEditorAbortsHeadless(t *testing.T) {
	setupTestDeps(t)

	out, err := execute(t, "--editor", "emacs", "--mcps", "smart-reviewer")
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("execute() error = %v, want ErrAborted", err)
	}
	if !strings.Contains(out, "Unknown editor: emacs") {
		t.Errorf("issue not printed:\n%s", out)
	}
}

func TestRun_OutputPath(t *testing.T) {
	env := setupTestDeps(t)
	custom := filepath.Join(env.Project, ".mcp", "servers.json")

	if out, err := execute(t, "--editor", "qoder", "--mcps", "db-schema", "--output", custom); err != nil {
		t.Fatalf("execute() error = %v\n%s", err, out)
	}
	if _, err := os.Stat(custom); err != nil {
		t.Errorf("custom output not written: %v", err)
	}
}

func TestRun_NonInteractiveWithoutFlags(t *testing.T) {
	setupTestDeps(t)

	_, err := execute(t)
	if !errors.Is(err, wizard.ErrNonInteractive) {
		t.Errorf("execute() error = %v, want ErrNonInteractive", err)
	}
}

func TestRun_SettingsDefaults(t *testing.T) {
	env := setupTestDeps(t)
	writeFile(t, env.Settings, `
defaults:
  editor: windsurf
  mcps: [orchestrator]
install:
  npm: pnpm
  registry: https://npm.example.com
`)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute() error = %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(env.Home, ".codeium", "windsurf", "mcp_config.json")); err != nil {
		t.Errorf("windsurf config not written: %v", err)
	}
	if len(env.Execs) != 1 {
		t.Fatalf("installs = %v, want one", env.Execs)
	}
	got := env.Execs[0].String()
	if got != "pnpm install -g @j0kz/orchestrator-mcp@^1.0.0 --registry https://npm.example.com" {
		t.Errorf("install command = %q", got)
	}
}

func TestRun_InvalidSettings(t *testing.T) {
	env := setupTestDeps(t)
	writeFile(t, env.Settings, "defaults:\n  editor: notepad\n")

	_, err := execute(t, "--editor", "cursor", "--mcps", "smart-reviewer")
	if !errors.Is(err, config.ErrInvalidEditor) {
		t.Errorf("execute() error = %v, want ErrInvalidEditor", err)
	}
}

func TestPreviewMarkdown(t *testing.T) {
	cfg := models.NewGeneratedConfig(models.KeyMCP)
	cfg.Servers["smart-reviewer"] = models.MCPServer{Command: "npx", Args: []string{"@j0kz/smart-reviewer-mcp@^1.0.0"}}

	md, err := previewMarkdown(&wizard.Result{
		Selections: models.Selections{
			Editor:      models.EditorVSCode,
			Preferences: models.Preferences{ReviewSeverity: models.SeverityStrict, TestFramework: models.TestFrameworkJest},
		},
		Issues: []string{"Node.js 18 or newer is required (found v16.0.0)."},
		Config: cfg,
		Path:   "/home/u/.continue/config.json",
		Diff:   "+{",
	})
	if err != nil {
		t.Fatalf("previewMarkdown() error = %v", err)
	}
	for _, want := range []string{
		"**Editor:** VS Code",
		"`/home/u/.continue/config.json`",
		"**Test framework:** jest",
		"## Issues",
		"\"mcp\": {",
		"```diff\n+{\n```",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("previewMarkdown() missing %q:\n%s", want, md)
		}
	}
}
