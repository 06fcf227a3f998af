// Package command runs external helper programs with a fixed argument vector.
package command

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Result is the outcome of a finished process
type Result struct {
	ExitCode int
	Stdout   []byte
}

// OK reports whether the process exited zero and printed something
func (r Result) OK() bool {
	return r.ExitCode == 0 && len(r.Stdout) > 0
}

// Runner executes a program without a shell. An error means the program could
// not be started or waited for; a non-zero exit is reported through Result.
type Runner interface {
	Run(name string, args ...string) (Result, error)
}

// ExecRunner implements Runner with os/exec
type ExecRunner struct{}

// NewExecRunner creates a runner that spawns real processes
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args and blocks until it exits. Stderr is discarded.
func (ExecRunner) Run(name string, args ...string) (Result, error) {
	var stdout bytes.Buffer
	cmd := exec.Command(name, args...) // #nosec G204 -- argv is fixed by the caller, no shell involved
	cmd.Stdout = &stdout

	err := cmd.Run()
	if err == nil {
		return Result{ExitCode: 0, Stdout: stdout.Bytes()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{ExitCode: exitErr.ExitCode(), Stdout: stdout.Bytes()}, nil
	}

	return Result{ExitCode: -1}, fmt.Errorf("failed to run %s: %w", name, err)
}
