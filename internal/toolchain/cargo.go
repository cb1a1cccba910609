package toolchain

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/agentx-labs/cratekit/internal/logging"
)

// DefaultCommand is the project-creation command used when none is configured.
const DefaultCommand = "cargo"

// ExitError reports that the toolchain ran but exited non-zero.
type ExitError struct {
	Command string
	Args    []string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s %s exited with status %d", e.Command, strings.Join(e.Args, " "), e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// ExitCode returns the process exit status.
func (e *ExitError) ExitCode() int { return e.Code }

// Cargo creates crates by running "<Command> new <name>".
type Cargo struct {
	// Command is the executable to run. Defaults to DefaultCommand.
	Command string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewCargo returns a Cargo runner for command, or for DefaultCommand when
// command is empty.
func NewCargo(command string) *Cargo {
	return &Cargo{Command: command}
}

func (c *Cargo) command() string {
	if c.Command == "" {
		return DefaultCommand
	}
	return c.Command
}

// NewArgs returns the arguments passed to the command for a new crate.
func NewArgs(name string, vcs bool) []string {
	args := []string{"new", name}
	if !vcs {
		args = append(args, "--vcs", "none")
	}
	return args
}

// CreateProject runs "<command> new <name>" in dir, adding "--vcs none" when
// vcs is false. It blocks until the command exits. A command that cannot be
// started returns the spawn error; a non-zero exit returns *ExitError.
func (c *Cargo) CreateProject(dir, name string, vcs bool) error {
	args := NewArgs(name, vcs)
	logging.LogCommand(c.command(), args)

	cmd := exec.Command(c.command(), args...)
	cmd.Dir = dir

	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stderrBuf bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &ExitError{
				Command: c.command(),
				Args:    args,
				Code:    exitErr.ExitCode(),
				Stderr:  stderrBuf.String(),
			}
		}
		return fmt.Errorf("running %s: %w", c.command(), err)
	}
	return nil
}
