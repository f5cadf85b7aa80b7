package toolchain

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"setup-electron/internal/logger"
)

// Runner invokes an external command and blocks until it exits.
// dir is the child's working directory; empty means the current one.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
// Nil writers fall back to the process's own stdout and stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts name with args in dir and waits for it.
// A non-zero exit is reported as *ExitError; failing to start returns the exec error as is.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	commandLine := strings.Join(cmd.Args, " ")
	if dir != "" {
		logger.Debug("[DEBUG] Running command: %s (in %s)\n", commandLine, dir)
	} else {
		logger.Debug("[DEBUG] Running command: %s\n", commandLine)
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: commandLine, Code: exitErr.ExitCode()}
	}
	return err
}
