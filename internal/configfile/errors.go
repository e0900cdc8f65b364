// Package configfile writes generated MCP configuration to an editor's
// config file, with optional backups and a diff preview.
package configfile

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConfigPath indicates no destination could be resolved for the editor.
	ErrNoConfigPath = errors.New("configfile: could not determine config path")

	// ErrConfigExists indicates the destination exists and force was not set.
	ErrConfigExists = errors.New("configfile: config file already exists")
)

// ExistsError reports the path that blocked a non-forced write.
type ExistsError struct {
	Path string
}

// Error implements the error interface.
func (e *ExistsError) Error() string {
	return fmt.Sprintf("config file already exists at %s. Use --force to overwrite", e.Path)
}

// Unwrap returns ErrConfigExists.
func (e *ExistsError) Unwrap() error {
	return ErrConfigExists
}
