package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Editor identifies a supported code editor.
type Editor string

const (
	EditorClaudeCode Editor = "claude-code"
	EditorCursor     Editor = "cursor"
	EditorWindsurf   Editor = "windsurf"
	EditorVSCode     Editor = "vscode"
	EditorRoo        Editor = "roo"
	EditorQoder      Editor = "qoder"
)

// editorOrder is the fixed detection priority.
var editorOrder = []Editor{
	EditorClaudeCode,
	EditorCursor,
	EditorWindsurf,
	EditorVSCode,
	EditorRoo,
	EditorQoder,
}

var editorNames = map[Editor]string{
	EditorClaudeCode: "Claude Code",
	EditorCursor:     "Cursor",
	EditorWindsurf:   "Windsurf",
	EditorVSCode:     "VS Code (Continue)",
	EditorRoo:        "Roo Code",
	EditorQoder:      "Qoder",
}

// AllEditors returns every supported editor in detection priority order.
func AllEditors() []Editor {
	result := make([]Editor, len(editorOrder))
	copy(result, editorOrder)
	return result
}

// IsValid reports whether e is one of the supported editors.
func (e Editor) IsValid() bool {
	_, ok := editorNames[e]
	return ok
}

// DisplayName returns a human-readable editor name.
// Unknown editors are returned as-is.
func (e Editor) DisplayName() string {
	if name, ok := editorNames[e]; ok {
		return name
	}
	return string(e)
}

// String implements fmt.Stringer.
func (e Editor) String() string {
	return string(e)
}

// ParseEditor normalizes s and reports whether it names a supported editor.
// The normalized value is returned even when unknown so callers can report it.
func ParseEditor(s string) (Editor, bool) {
	e := Editor(NormalizeName(s))
	return e, e.IsValid()
}

// NormalizeName applies NFC normalization, trims whitespace and lowercases.
// Used for editor and MCP names read from flags or settings files.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}
