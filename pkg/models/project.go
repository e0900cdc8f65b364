package models

// PackageManager identifies the JavaScript package manager of a project.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
	PackageManagerBun  PackageManager = "bun"
)

// Language values reported by project detection.
const (
	LanguageUnknown    = "unknown"
	LanguageJavaScript = "javascript"
	LanguageTypeScript = "typescript"
)

// ProjectInfo describes the project in the working directory.
// Framework is empty when no known framework was found.
type ProjectInfo struct {
	Language       string         `json:"language" yaml:"language"`
	Framework      string         `json:"framework,omitempty" yaml:"framework,omitempty"`
	PackageManager PackageManager `json:"packageManager" yaml:"package_manager"`
	HasTests       bool           `json:"hasTests" yaml:"has_tests"`
}

// UnknownProject is returned when no package.json is present.
func UnknownProject() ProjectInfo {
	return ProjectInfo{
		Language:       LanguageUnknown,
		PackageManager: PackageManagerNPM,
		HasTests:       false,
	}
}

// TestFramework identifies a JavaScript test runner. Empty means none.
type TestFramework string

const (
	TestFrameworkNone   TestFramework = ""
	TestFrameworkJest   TestFramework = "jest"
	TestFrameworkVitest TestFramework = "vitest"
	TestFrameworkMocha  TestFramework = "mocha"
	TestFrameworkAva    TestFramework = "ava"
)

// ValidTestFrameworks returns the known test frameworks.
func ValidTestFrameworks() []TestFramework {
	return []TestFramework{TestFrameworkJest, TestFrameworkVitest, TestFrameworkMocha, TestFrameworkAva}
}

// IsValid reports whether t is a known framework or none.
func (t TestFramework) IsValid() bool {
	switch t {
	case TestFrameworkNone, TestFrameworkJest, TestFrameworkVitest, TestFrameworkMocha, TestFrameworkAva:
		return true
	}
	return false
}
