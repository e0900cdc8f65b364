package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"

	"github.com/j0kz/mcp-wizard/pkg/models"
)

// Detector identifies project characteristics from the filesystem.
// Every call re-reads the filesystem; nothing is cached.
type Detector struct {
	root   string
	logger *slog.Logger
}

// NewDetector creates a Detector for root. An empty root means the
// working directory at call time.
func NewDetector(root string, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Detector{root: root, logger: logger}
}

// packageJSON is used for parsing package.json.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// allDeps merges dependencies and devDependencies.
func (p *packageJSON) allDeps() map[string]string {
	return mergeMaps(p.Dependencies, p.DevDependencies)
}

// frameworkMapping maps a dependency name to a framework name.
type frameworkMapping struct {
	Dependency string
	Framework  string
}

// jsFrameworks is ordered by priority; the first match wins.
var jsFrameworks = []frameworkMapping{
	{"next", "next"},
	{"react", "react"},
	{"vue", "vue"},
	{"@angular/core", "angular"},
	{"angular", "angular"},
	{"svelte", "svelte"},
	{"@nestjs/core", "nest"},
	{"fastify", "fastify"},
	{"express", "express"},
}

// testDependencies mark a project as having tests.
var testDependencies = []string{"jest", "vitest", "mocha", "ava"}

// lockfile maps a lockfile name to its package manager, by priority.
type lockfile struct {
	Name    string
	Manager models.PackageManager
}

var lockfiles = []lockfile{
	{"pnpm-lock.yaml", models.PackageManagerPNPM},
	{"yarn.lock", models.PackageManagerYarn},
	{"bun.lockb", models.PackageManagerBun},
}

// DetectProject reads package.json and lockfiles in the project root.
// A missing package.json yields models.UnknownProject(). Invalid JSON is
// returned as an error wrapping ErrInvalidPackageJSON.
func (d *Detector) DetectProject(ctx context.Context) (models.ProjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return models.ProjectInfo{}, err
	}

	root, err := d.resolveRoot()
	if err != nil {
		return models.ProjectInfo{}, err
	}

	d.logger.Debug("detecting project", "root", root)

	pkg, err := readPackageJSON(root)
	if errors.Is(err, errNoPackageJSON) {
		d.logger.Debug("no package.json found", "root", root)
		return models.UnknownProject(), nil
	}
	if err != nil {
		return models.ProjectInfo{}, err
	}

	info := models.ProjectInfo{
		Language:       models.LanguageJavaScript,
		PackageManager: detectPackageManager(root),
	}
	if fileExists(filepath.Join(root, "tsconfig.json")) {
		info.Language = models.LanguageTypeScript
	}

	deps := pkg.allDeps()
	for _, fm := range jsFrameworks {
		if _, ok := deps[fm.Dependency]; ok {
			info.Framework = fm.Framework
			break
		}
	}

	if _, ok := pkg.Scripts["test"]; ok {
		info.HasTests = true
	}
	for _, dep := range testDependencies {
		if _, ok := deps[dep]; ok {
			info.HasTests = true
			break
		}
	}

	d.logger.Debug("project detected",
		"language", info.Language,
		"framework", info.Framework,
		"package_manager", info.PackageManager,
		"has_tests", info.HasTests,
	)
	return info, nil
}

// detectPackageManager picks the package manager from lockfile presence.
func detectPackageManager(root string) models.PackageManager {
	for _, lf := range lockfiles {
		if fileExists(filepath.Join(root, lf.Name)) {
			return lf.Manager
		}
	}
	return models.PackageManagerNPM
}

func (d *Detector) resolveRoot() (string, error) {
	root := d.root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		root = cwd
	}
	root = filepath.Clean(root)
	if err := validateRoot(root); err != nil {
		return "", err
	}
	return root, nil
}

// readPackageJSON parses root/package.json. It returns errNoPackageJSON
// when the file does not exist.
func readPackageJSON(root string) (*packageJSON, error) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errNoPackageJSON
		}
		return nil, fmt.Errorf("read package.json: %w", err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPackageJSON, err)
	}
	return &pkg, nil
}

// validateRoot checks that the root path is a valid, accessible directory.
func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}
	return nil
}

// mergeMaps merges two string maps, with the second taking precedence.
func mergeMaps(a, b map[string]string) map[string]string {
	result := make(map[string]string, len(a)+len(b))
	maps.Copy(result, a)
	maps.Copy(result, b)
	return result
}

// fileExists checks if a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
