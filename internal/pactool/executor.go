package pactool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// CommandRunner runs the external tools pactool delegates to.
type CommandRunner interface {
	// Run executes name with args attached to the terminal and blocks until it exits.
	Run(name string, args ...string) error
	// Output executes name with args and returns its captured stdout.
	Output(name string, args ...string) ([]byte, error)
}

// Executor runs commands on the host, wired to the process's own standard streams.
type Executor struct {
	Context context.Context // The context to use for cancellation
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func NewExecutor(ctx context.Context) *Executor {
	return &Executor{Context: ctx}
}

// Run executes the command with inherited stdio so password prompts and
// pagers of the child keep working. The child is left in our process group
// so it receives terminal signals directly.
func (e *Executor) Run(name string, args ...string) error {
	cmd := exec.CommandContext(e.context(), name, args...)

	// --- Phase 0: wire up stdio ---
	cmd.Stdin = e.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = e.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	// --- Phase 1: start ---
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	// --- Phase 2: wait, while the child owns the first interrupt ---
	isCriticalAtomic.Store(1)
	defer isCriticalAtomic.Store(0)

	if waitErr := cmd.Wait(); waitErr != nil {
		if err := e.context().Err(); err != nil {
			return fmt.Errorf("command aborted: %w", err)
		}
		return waitErr
	}
	return nil
}

// Output runs the command without a terminal and returns what it wrote to stdout.
// Stderr is discarded; a non-zero exit is reported as an *exec.ExitError.
func (e *Executor) Output(name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(e.context(), name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard
	err := cmd.Run()
	return stdout.Bytes(), err
}

func (e *Executor) context() context.Context {
	if e.Context == nil {
		return context.Background()
	}
	return e.Context
}

// runTool runs an external tool for a menu action. Its exit status is not
// interpreted; only a tool that could not be started at all is reported.
func (s *Session) runTool(name string, args ...string) {
	debugf(s.Err, "running: %s %v\n", name, args)
	err := s.Runner.Run(name, args...)
	switch {
	case err == nil:
	case errors.Is(err, exec.ErrNotFound):
		cPrintf(s.Err, colWarn, "Could not run %s: %v\n", name, err)
	default:
		debugf(s.Err, "%s exited with: %v\n", name, err)
	}
}
