// Package runner runs external processes and captures what they print.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

type (
	Result struct {
		Stdout   string
		Stderr   string
		ExitCode int
	}

	// Runner runs the named program in dir. A process that ran and exited non-zero is not an
	// error: callers inspect [Result.ExitCode].
	Runner interface {
		Run(ctx context.Context, dir, name string, args ...string) (Result, error)
	}

	// Exec implements [Runner] with os/exec. Env is appended to the current environment.
	Exec struct {
		Env []string
	}
)

var (
	ErrStart = errors.New("failed to start process")
)

// Non-nil returned error wraps [ErrStart].
func (e Exec) Run(ctx context.Context, dir, name string, args ...string) (res Result, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()

		return res, nil
	} else if err != nil {
		return res, fmt.Errorf("%w: %s: %s", ErrStart, name, err.Error())
	}

	return res, nil
}
