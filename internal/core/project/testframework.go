package project

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"

	"github.com/j0kz/mcp-wizard/pkg/models"
)

// frameworkPriority is the order dependencies are checked in. vitest wins
// over jest when both are installed.
var frameworkPriority = []models.TestFramework{
	models.TestFrameworkVitest,
	models.TestFrameworkJest,
	models.TestFrameworkMocha,
	models.TestFrameworkAva,
}

// configFile maps a runner config file to its framework.
type configFile struct {
	Name      string
	Framework models.TestFramework
}

var testConfigFiles = []configFile{
	{"vitest.config.ts", models.TestFrameworkVitest},
	{"vitest.config.js", models.TestFrameworkVitest},
	{"jest.config.js", models.TestFrameworkJest},
	{"jest.config.ts", models.TestFrameworkJest},
	{".mocharc.json", models.TestFrameworkMocha},
	{"ava.config.js", models.TestFrameworkAva},
}

var testScriptPatterns = []struct {
	re        *regexp.Regexp
	framework models.TestFramework
}{
	{regexp.MustCompile(`\bvitest\b`), models.TestFrameworkVitest},
	{regexp.MustCompile(`\bjest\b`), models.TestFrameworkJest},
	{regexp.MustCompile(`\bmocha\b`), models.TestFrameworkMocha},
	{regexp.MustCompile(`\bava\b`), models.TestFrameworkAva},
}

// DetectTestFramework infers the project's test runner. It checks
// dependencies, then runner config files, then the "test" script.
// Returns TestFrameworkNone when package.json is absent or nothing matches.
func (d *Detector) DetectTestFramework(ctx context.Context) (models.TestFramework, error) {
	if err := ctx.Err(); err != nil {
		return models.TestFrameworkNone, err
	}

	root, err := d.resolveRoot()
	if err != nil {
		return models.TestFrameworkNone, err
	}

	pkg, err := readPackageJSON(root)
	if errors.Is(err, errNoPackageJSON) {
		return models.TestFrameworkNone, nil
	}
	if err != nil {
		return models.TestFrameworkNone, err
	}

	deps := pkg.allDeps()
	for _, fw := range frameworkPriority {
		if _, ok := deps[string(fw)]; ok {
			d.logger.Debug("test framework detected", "framework", fw, "source", "dependencies")
			return fw, nil
		}
	}

	for _, cf := range testConfigFiles {
		if fileExists(filepath.Join(root, cf.Name)) {
			d.logger.Debug("test framework detected", "framework", cf.Framework, "source", cf.Name)
			return cf.Framework, nil
		}
	}

	if script := pkg.Scripts["test"]; script != "" {
		for _, p := range testScriptPatterns {
			if p.re.MatchString(script) {
				d.logger.Debug("test framework detected", "framework", p.framework, "source", "scripts.test")
				return p.framework, nil
			}
		}
	}

	return models.TestFrameworkNone, nil
}
