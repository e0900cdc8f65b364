// Package shell runs external commands for the detectors and the installer.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrCommandFailed wraps every non-zero exit or start failure.
var ErrCommandFailed = errors.New("shell: command failed")

// RunFunc executes name with args and returns its trimmed stdout.
type RunFunc func(ctx context.Context, name string, args ...string) (string, error)

// Command describes a process to execute.
type Command struct {
	Name string
	Args []string
	// Inherit attaches the child to the current process stdio. When false
	// output is captured and attached to the returned error.
	Inherit bool
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// ExecFunc executes a Command.
type ExecFunc func(ctx context.Context, cmd Command) error

// DefaultRun is the RunFunc backed by os/exec.
func DefaultRun(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", commandError(Command{Name: name, Args: args}, err, stderr.String())
	}
	return strings.TrimSpace(string(out)), nil
}

// DefaultExec is the ExecFunc backed by os/exec.
func DefaultExec(ctx context.Context, c Command) error {
	return execWith(ctx, c, os.Stdin, os.Stdout, os.Stderr)
}

func execWith(ctx context.Context, c Command, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Inherit {
		cmd.Stdin = stdin
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		if err := cmd.Run(); err != nil {
			return commandError(c, err, "")
		}
		return nil
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return commandError(c, err, buf.String())
	}
	return nil
}

// maxOutputTail bounds how much captured output is kept in an error.
const maxOutputTail = 2048

func commandError(c Command, err error, output string) error {
	output = strings.TrimSpace(output)
	if len(output) > maxOutputTail {
		output = "..." + output[len(output)-maxOutputTail:]
	}
	if output == "" {
		return fmt.Errorf("%w: %s: %w", ErrCommandFailed, c, err)
	}
	return fmt.Errorf("%w: %s: %w\n%s", ErrCommandFailed, c, err, output)
}
