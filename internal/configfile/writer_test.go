package configfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/j0kz/mcp-wizard/internal/generator"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

func sampleConfig() models.GeneratedConfig {
	return generator.Cursor(models.Selections{
		Editor: models.EditorCursor,
		MCPs:   []string{"smart-reviewer", "test-generator"},
	})
}

func pathIn(dir string) func(models.Editor) (string, bool) {
	return func(e models.Editor) (string, bool) {
		if !e.IsValid() {
			return "", false
		}
		return filepath.Join(dir, string(e), "mcp_config.json"), true
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := New(WithPathFunc(pathIn(dir)))
	cfg := sampleConfig()

	path, err := w.Write(cfg, models.EditorCursor, "", false)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if want := filepath.Join(dir, "cursor", "mcp_config.json"); path != want {
		t.Errorf("Write() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if !strings.HasSuffix(string(data), "}\n") || !strings.Contains(string(data), "\n  \"mcpServers\"") {
		t.Errorf("file is not 2-space indented JSON:\n%s", data)
	}

	var got models.GeneratedConfig
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal written file: %v", err)
	}
	if got.Key != cfg.Key || len(got.Servers) != len(cfg.Servers) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
	for name, srv := range cfg.Servers {
		if got.Servers[name].Command != srv.Command || got.Servers[name].Args[0] != srv.Args[0] {
			t.Errorf("server %s = %+v, want %+v", name, got.Servers[name], srv)
		}
	}
}

func TestWrite_CustomPath(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "deeper", "out.json")
	w := New(WithPathFunc(func(models.Editor) (string, bool) { return "", false }))

	path, err := w.Write(sampleConfig(), "unknown-editor", custom, false)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if path != custom {
		t.Errorf("Write() path = %q, want %q", path, custom)
	}
	if _, err := os.Stat(custom); err != nil {
		t.Errorf("custom path not written: %v", err)
	}
}

func TestWrite_NoPath(t *testing.T) {
	w := New(WithPathFunc(func(models.Editor) (string, bool) { return "", false }))

	_, err := w.Write(sampleConfig(), "unknown-editor", "", false)
	if !errors.Is(err, ErrNoConfigPath) {
		t.Errorf("Write() error = %v, want ErrNoConfigPath", err)
	}
}

func TestWrite_ExistingWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := New()

	_, err := w.Write(sampleConfig(), models.EditorCursor, path, false)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("Write() error = %v, want ErrConfigExists", err)
	}
	if !regexp.MustCompile(`already exists.*--force`).MatchString(err.Error()) {
		t.Errorf("error message %q should mention --force", err)
	}
	var exists *ExistsError
	if !errors.As(err, &exists) || exists.Path != path {
		t.Errorf("errors.As(ExistsError) path = %v", exists)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("file was modified: %q", data)
	}
}

func TestWrite_ExistingWithForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := New()

	if _, err := w.Write(sampleConfig(), models.EditorCursor, path, true); err != nil {
		t.Fatalf("Write(force) error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "smart-reviewer") {
		t.Errorf("file not overwritten: %q", data)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mcp.json")
	if err := os.WriteFile(path, []byte(`{"mcpServers":{}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	at := time.UnixMilli(1700000000123)
	w := New(WithClock(func() time.Time { return at }))

	backup, err := w.Backup(path)
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if want := path + ".backup.1700000000123"; backup != want {
		t.Errorf("Backup() = %q, want %q", backup, want)
	}
	data, err := os.ReadFile(backup)
	if err != nil || string(data) != `{"mcpServers":{}}` {
		t.Errorf("backup content = %q, %v", data, err)
	}
}

func TestBackup_Missing(t *testing.T) {
	dir := t.TempDir()
	w := New()

	backup, err := w.Backup(filepath.Join(dir, "absent.json"))
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if backup != "" {
		t.Errorf("Backup() = %q, want empty", backup)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Backup of missing file created %d entries", len(entries))
	}
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mcp.json")
	w := New()
	cfg := sampleConfig()

	diff, err := w.Diff(path, cfg)
	if err != nil {
		t.Fatalf("Diff(missing) error = %v", err)
	}
	if !strings.Contains(diff, "+  \"mcpServers\": {") {
		t.Errorf("Diff(missing) should add every line:\n%s", diff)
	}

	if _, err := w.Write(cfg, models.EditorCursor, path, false); err != nil {
		t.Fatal(err)
	}
	diff, err = w.Diff(path, cfg)
	if err != nil {
		t.Fatalf("Diff(same) error = %v", err)
	}
	if diff != "" {
		t.Errorf("Diff(same) = %q, want empty", diff)
	}

	changed := generator.Cursor(models.Selections{MCPs: []string{"db-schema"}})
	diff, err = w.Diff(path, changed)
	if err != nil {
		t.Fatalf("Diff(changed) error = %v", err)
	}
	if !strings.Contains(diff, "-    \"smart-reviewer\"") || !strings.Contains(diff, "+    \"db-schema\"") {
		t.Errorf("Diff(changed) missing expected hunks:\n%s", diff)
	}
}
