package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Top-level keys used by generated configs.
const (
	KeyMCPServers = "mcpServers"
	KeyMCP        = "mcp"
)

// MCPServer is the launch declaration for one MCP tool server.
type MCPServer struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// GeneratedConfig is an editor-specific MCP configuration document.
// It marshals to {"<Key>": {"<name>": {...}}}.
type GeneratedConfig struct {
	Key     string
	Servers map[string]MCPServer
}

// NewGeneratedConfig creates an empty config nested under key.
func NewGeneratedConfig(key string) GeneratedConfig {
	return GeneratedConfig{Key: key, Servers: make(map[string]MCPServer)}
}

// Names returns the server names in sorted order.
func (c GeneratedConfig) Names() []string {
	return slices.Sorted(maps.Keys(c.Servers))
}

// MarshalJSON implements json.Marshaler.
func (c GeneratedConfig) MarshalJSON() ([]byte, error) {
	servers := c.Servers
	if servers == nil {
		servers = map[string]MCPServer{}
	}
	return json.Marshal(map[string]map[string]MCPServer{c.Key: servers})
}

// UnmarshalJSON implements json.Unmarshaler. The document must have exactly
// one top-level key.
func (c *GeneratedConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]MCPServer
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("generated config: expected one top-level key, got %d", len(raw))
	}
	for k, v := range raw {
		c.Key = k
		c.Servers = v
		if c.Servers == nil {
			c.Servers = make(map[string]MCPServer)
		}
	}
	return nil
}
