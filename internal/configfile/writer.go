package configfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/j0kz/mcp-wizard/internal/editor"
	"github.com/j0kz/mcp-wizard/internal/generator"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Writer persists generated configs.
type Writer struct {
	pathFor func(models.Editor) (string, bool)
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithPathFunc sets the editor config path resolver.
func WithPathFunc(fn func(models.Editor) (string, bool)) Option {
	return func(w *Writer) { w.pathFor = fn }
}

// WithClock sets the clock used to name backups.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

// WithLogger sets the logger for the writer.
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) { w.logger = l }
}

// New creates a Writer resolving paths with editor.ConfigPath.
func New(opts ...Option) *Writer {
	w := &Writer{
		pathFor: editor.ConfigPath,
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path resolves the destination for editor, preferring customPath.
func (w *Writer) Path(e models.Editor, customPath string) (string, error) {
	if customPath != "" {
		return customPath, nil
	}
	path, ok := w.pathFor(e)
	if !ok || path == "" {
		return "", fmt.Errorf("%w for editor %q", ErrNoConfigPath, e)
	}
	return path, nil
}

// Write renders cfg as JSON and stores it at the resolved path, creating
// parent directories. It refuses to replace an existing file unless force
// is set. The written path is returned.
func (w *Writer) Write(cfg models.GeneratedConfig, e models.Editor, customPath string, force bool) (string, error) {
	path, err := w.Path(e, customPath)
	if err != nil {
		return "", err
	}

	if !force && fileExists(path) {
		return "", &ExistsError{Path: path}
	}

	data, err := generator.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := atomicWrite(path, data); err != nil {
		return "", fmt.Errorf("write config %s: %w", path, err)
	}

	w.logger.Debug("config written", "path", path, "servers", len(cfg.Servers))
	return path, nil
}

// Backup copies path to "<path>.backup.<unix-millis>" and returns the
// backup path. A missing file is not an error and yields "".
func (w *Writer) Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s for backup: %w", path, err)
	}

	mode := filePerm
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	backup := fmt.Sprintf("%s.backup.%d", path, w.now().UnixMilli())
	if err := os.WriteFile(backup, data, mode); err != nil {
		return "", fmt.Errorf("write backup %s: %w", backup, err)
	}
	w.logger.Debug("backup created", "path", backup)
	return backup, nil
}

// Diff returns a unified diff from the current content of path to the
// rendered cfg. A missing file diffs against empty content.
func (w *Writer) Diff(path string, cfg models.GeneratedConfig) (string, error) {
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	next, err := generator.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(next)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// atomicWrite writes data to a temporary file in the target directory and
// renames it into place.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mcp-wizard-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
