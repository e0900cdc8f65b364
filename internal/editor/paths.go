// Package editor detects installed code editors and resolves the location
// of each editor's MCP configuration file.
package editor

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Env captures the parts of the process environment that decide where
// editors keep their configuration.
type Env struct {
	GOOS         string
	Home         string
	AppData      string // %APPDATA% on windows
	LocalAppData string // %LOCALAPPDATA% on windows
}

// CurrentEnv returns the Env of the running process.
func CurrentEnv() Env {
	home, _ := os.UserHomeDir()
	env := Env{
		GOOS:         runtime.GOOS,
		Home:         home,
		AppData:      os.Getenv("APPDATA"),
		LocalAppData: os.Getenv("LOCALAPPDATA"),
	}
	if env.GOOS == "windows" {
		if env.AppData == "" {
			env.AppData = filepath.Join(home, "AppData", "Roaming")
		}
		if env.LocalAppData == "" {
			env.LocalAppData = filepath.Join(home, "AppData", "Local")
		}
	}
	return env
}

// appConfigDir is the per-user application config root for the OS:
// %APPDATA% on windows, ~/Library/Application Support on darwin and
// ~/.config elsewhere.
func (e Env) appConfigDir() string {
	switch e.GOOS {
	case "windows":
		return e.AppData
	case "darwin":
		return filepath.Join(e.Home, "Library", "Application Support")
	default:
		return filepath.Join(e.Home, ".config")
	}
}

type baseDir int

const (
	baseHome baseDir = iota
	baseAppConfig
)

type pathSpec struct {
	base  baseDir
	parts []string
}

func (p pathSpec) resolve(env Env) string {
	root := env.Home
	if p.base == baseAppConfig {
		root = env.appConfigDir()
	}
	return filepath.Join(append([]string{root}, p.parts...)...)
}

const rooExtensionID = "rooveterinaryinc.roo-cline"

// configPaths maps each editor to its MCP config file.
var configPaths = map[models.Editor]pathSpec{
	models.EditorClaudeCode: {baseAppConfig, []string{"claude-code", "mcp_settings.json"}},
	models.EditorCursor:     {baseHome, []string{".cursor", "mcp_config.json"}},
	models.EditorWindsurf:   {baseHome, []string{".codeium", "windsurf", "mcp_config.json"}},
	models.EditorVSCode:     {baseHome, []string{".continue", "config.json"}},
	models.EditorRoo:        {baseAppConfig, []string{"Code", "User", "globalStorage", rooExtensionID, "settings", "mcp_settings.json"}},
	models.EditorQoder:      {baseHome, []string{".qoder", "mcp_config.json"}},
}

// PathFor returns the MCP config file path for editor under env.
// The second result is false for editors outside the supported set.
func PathFor(editor models.Editor, env Env) (string, bool) {
	spec, ok := configPaths[editor]
	if !ok {
		return "", false
	}
	return spec.resolve(env), true
}

// ConfigPath is PathFor evaluated against the current process environment.
func ConfigPath(editor models.Editor) (string, bool) {
	return PathFor(editor, CurrentEnv())
}
