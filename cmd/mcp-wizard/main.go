package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/j0kz/mcp-wizard/internal/cli"
)

func main() {
	// Environment from a local .env fills MCP_WIZARD_* overrides.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
