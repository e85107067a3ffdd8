// Package runnertest provides a recording [runner.Runner] for tests.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"github.com/kxue43/project-creator/runner"
)

type (
	Call struct {
		Dir  string
		Name string
		Args []string
	}

	Handler func(Call) (runner.Result, error)

	// Fake records every call. Calls succeed with exit code 0 unless Handler says otherwise.
	Fake struct {
		Handler Handler
		calls   []Call
		mux     sync.Mutex
	}
)

func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	return c.Name + " " + strings.Join(c.Args, " ")
}

func (f *Fake) Run(_ context.Context, dir, name string, args ...string) (runner.Result, error) {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	f.mux.Lock()
	f.calls = append(f.calls, call)
	handler := f.Handler
	f.mux.Unlock()

	if handler == nil {
		return runner.Result{}, nil
	}

	return handler(call)
}

func (f *Fake) Calls() []Call {
	f.mux.Lock()
	defer f.mux.Unlock()

	return append([]Call(nil), f.calls...)
}

// Commands returns every recorded call rendered as a command line.
func (f *Fake) Commands() []string {
	calls := f.Calls()
	out := make([]string, len(calls))

	for i := range calls {
		out[i] = calls[i].String()
	}

	return out
}

// ExitWith makes every call whose command line starts with prefix exit with code and stderr.
// Other calls fall through to next, or succeed when next is nil.
func ExitWith(prefix string, code int, stderr string, next Handler) Handler {
	return func(c Call) (runner.Result, error) {
		if strings.HasPrefix(c.String(), prefix) {
			return runner.Result{ExitCode: code, Stderr: stderr}, nil
		}

		if next == nil {
			return runner.Result{}, nil
		}

		return next(c)
	}
}

// Stdout makes calls whose command line starts with prefix succeed and print stdout.
func Stdout(prefix, stdout string, next Handler) Handler {
	return func(c Call) (runner.Result, error) {
		if strings.HasPrefix(c.String(), prefix) {
			return runner.Result{Stdout: stdout}, nil
		}

		if next == nil {
			return runner.Result{}, nil
		}

		return next(c)
	}
}
