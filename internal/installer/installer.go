// Package installer installs MCP tool packages globally through npm.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/j0kz/mcp-wizard/internal/resilience"
	"github.com/j0kz/mcp-wizard/internal/shell"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

// ErrInstallFailed wraps the first npm failure of an Install call.
var ErrInstallFailed = errors.New("installer: install failed")

// Spinner reports the progress of a single package installation.
type Spinner interface {
	SetTitle(title string)
	Succeed(msg string)
	Fail(msg string)
}

// SpinnerFunc starts a Spinner with the given title. plain is set for
// verbose installs, where npm writes to the terminal and the spinner must
// not animate.
type SpinnerFunc func(title string, plain bool) Spinner

// Installer runs `npm install -g` for each selected MCP.
type Installer struct {
	npm      string
	registry string
	retry    resilience.Policy
	exec     shell.ExecFunc
	spinner  SpinnerFunc
	out      io.Writer
	logger   *slog.Logger
}

// Option configures an Installer.
type Option func(*Installer)

// WithNpm sets the npm executable.
func WithNpm(bin string) Option {
	return func(i *Installer) {
		if bin != "" {
			i.npm = bin
		}
	}
}

// WithRegistry passes --registry to every install.
func WithRegistry(url string) Option {
	return func(i *Installer) { i.registry = url }
}

// WithRetry retries each failing install according to p. A missing npm
// executable is never retried.
func WithRetry(p resilience.Policy) Option {
	return func(i *Installer) { i.retry = p }
}

// WithExecFunc sets the command executor.
func WithExecFunc(fn shell.ExecFunc) Option {
	return func(i *Installer) { i.exec = fn }
}

// WithSpinner sets the spinner factory.
func WithSpinner(fn SpinnerFunc) Option {
	return func(i *Installer) { i.spinner = fn }
}

// WithOutput sets where warnings are printed.
func WithOutput(w io.Writer) Option {
	return func(i *Installer) { i.out = w }
}

// WithLogger sets the logger for the installer.
func WithLogger(l *slog.Logger) Option {
	return func(i *Installer) { i.logger = l }
}

// New creates an Installer. Without WithSpinner progress is silent.
func New(opts ...Option) *Installer {
	i := &Installer{
		npm:     "npm",
		exec:    shell.DefaultExec,
		spinner: func(string, bool) Spinner { return nopSpinner{} },
		out:     os.Stderr,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Install installs each known MCP in order. Unknown names are warned about
// and skipped. The first failing install stops the run.
func (i *Installer) Install(ctx context.Context, names []string, verbose bool) error {
	for _, name := range names {
		info, ok := models.LookupMCP(name)
		if !ok {
			_, _ = fmt.Fprintf(i.out, "Warning: Unknown MCP: %s\n", name)
			i.logger.Warn("skipping unknown mcp", "name", name)
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		pkg := models.PackageSpec(info.Name)
		sp := i.spinner(fmt.Sprintf("Installing %s...", info.Package), verbose)
		cmd := i.command(pkg, verbose)
		i.logger.Debug("running install", "cmd", cmd.String())

		err := resilience.Do(ctx, i.retry, func(attempt int) error {
			if attempt > 0 {
				i.logger.Warn("retrying install", "package", info.Package, "attempt", attempt+1)
				sp.SetTitle(fmt.Sprintf("Retrying %s (attempt %d)...", info.Package, attempt+1))
			}
			err := i.exec(ctx, cmd)
			if errors.Is(err, exec.ErrNotFound) {
				return resilience.Permanent(err)
			}
			return err
		})
		if err != nil {
			sp.Fail(fmt.Sprintf("Failed to install %s", info.Package))
			return fmt.Errorf("%w: %s: %w", ErrInstallFailed, info.Package, err)
		}
		sp.Succeed(fmt.Sprintf("Installed %s", info.Package))
	}
	return nil
}

func (i *Installer) command(pkg string, verbose bool) shell.Command {
	args := []string{"install", "-g", pkg}
	if i.registry != "" {
		args = append(args, "--registry", i.registry)
	}
	return shell.Command{Name: i.npm, Args: args, Inherit: verbose}
}

type nopSpinner struct{}

func (nopSpinner) SetTitle(string) {}
func (nopSpinner) Succeed(string)  {}
func (nopSpinner) Fail(string)     {}
