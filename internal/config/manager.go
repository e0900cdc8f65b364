package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "MCP_WIZARD_CONFIG"
	EnvEditor     = "MCP_WIZARD_EDITOR"
	EnvSeverity   = "MCP_WIZARD_SEVERITY"
	EnvNpm        = "MCP_WIZARD_NPM"
	EnvRegistry   = "MCP_WIZARD_REGISTRY"
	EnvLogLevel   = "MCP_WIZARD_LOG_LEVEL"
	EnvNoColor    = "NO_COLOR"
)

// DefaultPath returns $MCP_WIZARD_CONFIG or the settings file in the user
// config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return filepath.Clean(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// Manager provides thread-safe access to the settings.
// It must be initialized via Load() before use.
type Manager struct {
	mu       sync.RWMutex
	path     string
	file     *Settings
	settings *Settings
	exists   bool
}

// NewManager creates an uninitialized Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Load reads the settings file at path, or DefaultPath when path is empty.
// A missing file yields defaults. Environment variables override file
// values and the merged result is validated before being stored.
func (m *Manager) Load(path string) (*Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// A failed load still records the path so Reset and Save can replace
	// a broken file.
	m.path = path
	m.file = nil
	m.settings = nil

	file := NewDefaultSettings()
	exists, err := loadYAMLFile(path, file)
	m.exists = exists
	if err != nil {
		return nil, err
	}
	applyDefaults(file)

	effective := *file
	effective.Defaults.MCPs = append([]string(nil), file.Defaults.MCPs...)
	applyEnvOverrides(&effective)

	if err := Validate(&effective); err != nil {
		return nil, err
	}

	m.file = file
	m.settings = &effective
	m.exists = exists
	return m.settings, nil
}

// Get returns the effective settings, or nil before Load.
func (m *Manager) Get() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Path returns the settings file path chosen by Load.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// Exists reports whether Load found a settings file.
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.exists
}

// Reset replaces the file-level settings with compiled defaults. The
// effective settings are left unchanged until the next Load.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.file = NewDefaultSettings()
}

// Save writes the file-level settings, without environment overrides,
// atomically to Path.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file == nil {
		return ErrNotInitialized
	}

	data, err := yaml.Marshal(m.file)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := atomicWrite(m.path, data); err != nil {
		return err
	}
	m.exists = true
	return nil
}

// loadYAMLFile unmarshals path into target. It returns false without error
// when the file does not exist, and true with an error when it cannot be
// parsed.
func loadYAMLFile(path string, target *Settings) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return true, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return true, nil
}

// applyEnvOverrides applies environment variable overrides to the settings.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(s *Settings) {
	if v := os.Getenv(EnvEditor); v != "" {
		s.Defaults.Editor = v
	}
	if v := os.Getenv(EnvSeverity); v != "" {
		s.Defaults.ReviewSeverity = models.Severity(models.NormalizeName(v))
	}
	if v := os.Getenv(EnvNpm); v != "" {
		s.Install.Npm = v
	}
	if v := os.Getenv(EnvRegistry); v != "" {
		s.Install.Registry = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.Log.Level = v
	}
	if os.Getenv(EnvNoColor) != "" {
		s.UI.NoColor = true
	}
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mcp-wizard-config-*.tmp")
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
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
