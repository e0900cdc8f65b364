package models

import "slices"

// MCP tool names.
const (
	MCPSmartReviewer        = "smart-reviewer"
	MCPTestGenerator        = "test-generator"
	MCPArchitectureAnalyzer = "architecture-analyzer"
	MCPDocGenerator         = "doc-generator"
	MCPSecurityScanner      = "security-scanner"
	MCPRefactorAssistant    = "refactor-assistant"
	MCPAPIDesigner          = "api-designer"
	MCPDBSchema             = "db-schema"
	MCPOrchestrator         = "orchestrator"
)

// PackageScope is the npm scope every MCP tool is published under.
const PackageScope = "@j0kz"

// VersionRange is the semver range pinned in configs and installs.
const VersionRange = "^1.0.0"

// MCPInfo describes one installable MCP tool.
type MCPInfo struct {
	Name        string
	Package     string
	Description string
}

var catalog = []MCPInfo{
	{MCPSmartReviewer, PackageScope + "/smart-reviewer-mcp", "Code review with quality metrics"},
	{MCPTestGenerator, PackageScope + "/test-generator-mcp", "Generate test suites"},
	{MCPArchitectureAnalyzer, PackageScope + "/architecture-analyzer-mcp", "Dependency and layering analysis"},
	{MCPDocGenerator, PackageScope + "/doc-generator-mcp", "Generate JSDoc, README and API docs"},
	{MCPSecurityScanner, PackageScope + "/security-scanner-mcp", "Vulnerability and secret scanning"},
	{MCPRefactorAssistant, PackageScope + "/refactor-assistant-mcp", "Guided refactoring"},
	{MCPAPIDesigner, PackageScope + "/api-designer-mcp", "REST and GraphQL API design"},
	{MCPDBSchema, PackageScope + "/db-schema-mcp", "Database schema design"},
	{MCPOrchestrator, PackageScope + "/orchestrator-mcp", "Multi-tool workflows"},
}

// Catalog returns every known MCP tool in display order.
func Catalog() []MCPInfo {
	return slices.Clone(catalog)
}

// LookupMCP returns the catalog entry for name.
func LookupMCP(name string) (MCPInfo, bool) {
	for _, info := range catalog {
		if info.Name == name {
			return info, true
		}
	}
	return MCPInfo{}, false
}

// PackageSpec returns the versioned npm package spec for an MCP name,
// e.g. "@j0kz/smart-reviewer-mcp@^1.0.0". The name is not checked
// against the catalog.
func PackageSpec(name string) string {
	return PackageScope + "/" + name + "-mcp@" + VersionRange
}
