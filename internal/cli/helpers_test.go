package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/j0kz/mcp-wizard/internal/config"
	"github.com/j0kz/mcp-wizard/internal/editor"
	"github.com/j0kz/mcp-wizard/internal/shell"
	"github.com/j0kz/mcp-wizard/internal/ui"
)

// testEnv is a hermetic home directory, project directory and command log.
type testEnv struct {
	Home     string
	Project  string
	Settings string
	Execs    []shell.Command
}

var fixedNow = time.UnixMilli(1760400000000)

func setupTestDeps(t *testing.T) *testEnv {
	t.Helper()
	for _, k := range []string{config.EnvEditor, config.EnvSeverity, config.EnvNpm, config.EnvRegistry, config.EnvLogLevel, config.EnvNoColor} {
		t.Setenv(k, "")
	}
	env := &testEnv{
		Home:     t.TempDir(),
		Project:  t.TempDir(),
		Settings: filepath.Join(t.TempDir(), "config.yaml"),
	}
	t.Setenv(config.EnvConfigPath, env.Settings)

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	orig := GetDeps()
	SetDeps(&Dependencies{
		Settings: config.NewManager(),
		Theme:    ui.NewTheme(true),
		Headless: hm,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Env:      editor.Env{GOOS: "linux", Home: env.Home},
		Root:     env.Project,
		Run:      fakeRun,
		Exec: func(_ context.Context, c shell.Command) error {
			env.Execs = append(env.Execs, c)
			return nil
		},
		Now: func() time.Time { return fixedNow },
	})
	t.Cleanup(func() { SetDeps(orig) })
	return env
}

// fakeRun answers only `node --version`; every editor CLI is missing.
func fakeRun(_ context.Context, name string, _ ...string) (string, error) {
	if name == "node" {
		return "v20.11.0", nil
	}
	return "", errors.New("executable not found: " + name)
}

// execute runs the root command with args after resetting flag state left
// by earlier tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
