// Package models provides the shared data types for mcp-wizard.
//
// # Editors
//
// [Editor] is a closed set of supported editors. [AllEditors] returns them
// in detection priority order:
//
//	for _, e := range models.AllEditors() {
//	    fmt.Println(e, e.DisplayName())
//	}
//
// # Selections
//
// [Selections] holds the resolved user choices that drive config
// generation, whether they came from CLI flags or interactive prompts.
//
// # Generated Config
//
// [GeneratedConfig] is the editor-specific JSON document written to disk.
// Most editors nest servers under "mcpServers"; VS Code uses "mcp".
package models
