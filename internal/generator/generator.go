// Package generator maps wizard selections to editor-specific MCP
// configuration documents. Every function here is pure.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Func builds the config document for one editor.
type Func func(models.Selections) models.GeneratedConfig

// ServerFor returns the launch declaration for an MCP tool.
func ServerFor(name string) models.MCPServer {
	return models.MCPServer{
		Command: "npx",
		Args:    []string{models.PackageSpec(name)},
	}
}

func build(key string, s models.Selections) models.GeneratedConfig {
	cfg := models.NewGeneratedConfig(key)
	for _, name := range s.MCPs {
		cfg.Servers[name] = ServerFor(name)
	}
	return cfg
}

// ClaudeCode generates the Claude Code config.
func ClaudeCode(s models.Selections) models.GeneratedConfig { return build(models.KeyMCPServers, s) }

// Cursor generates the Cursor config.
func Cursor(s models.Selections) models.GeneratedConfig { return build(models.KeyMCPServers, s) }

// Windsurf generates the Windsurf config.
func Windsurf(s models.Selections) models.GeneratedConfig { return build(models.KeyMCPServers, s) }

// VSCode generates the VS Code (Continue) config, which nests servers
// under "mcp" instead of "mcpServers".
func VSCode(s models.Selections) models.GeneratedConfig { return build(models.KeyMCP, s) }

// Roo generates the Roo Code config.
func Roo(s models.Selections) models.GeneratedConfig { return build(models.KeyMCPServers, s) }

// Qoder generates the Qoder config.
func Qoder(s models.Selections) models.GeneratedConfig { return build(models.KeyMCPServers, s) }

// Universal is the fallback for editors outside the supported set.
func Universal(s models.Selections) models.GeneratedConfig { return build(models.KeyMCPServers, s) }

var generators = map[models.Editor]Func{
	models.EditorClaudeCode: ClaudeCode,
	models.EditorCursor:     Cursor,
	models.EditorWindsurf:   Windsurf,
	models.EditorVSCode:     VSCode,
	models.EditorRoo:        Roo,
	models.EditorQoder:      Qoder,
}

// For returns the generator for editor, or Universal for unknown editors.
func For(editor models.Editor) Func {
	if fn, ok := generators[editor]; ok {
		return fn
	}
	return Universal
}

// Generator dispatches to the per-editor generator functions.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// Generate builds the config for s.Editor. Unknown editors fall back to
// the universal shape rather than failing.
func (g *Generator) Generate(ctx context.Context, s models.Selections) (models.GeneratedConfig, error) {
	if err := ctx.Err(); err != nil {
		return models.GeneratedConfig{}, err
	}
	return For(s.Editor)(s), nil
}

// Marshal renders cfg as 2-space indented JSON with a trailing newline.
func Marshal(cfg models.GeneratedConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
