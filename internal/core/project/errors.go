// Package project inspects the JavaScript project in a directory: its
// language, framework, package manager and test runner.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidPackageJSON indicates package.json exists but is not valid JSON.
	ErrInvalidPackageJSON = errors.New("project: invalid package.json")

	// ErrInvalidRoot indicates the given project root path is invalid or inaccessible.
	ErrInvalidRoot = errors.New("project: invalid project root path")

	// errNoPackageJSON is internal; detectors translate it into defaults.
	errNoPackageJSON = errors.New("project: package.json not found")
)
