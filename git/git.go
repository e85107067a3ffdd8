// Package git drives the git command line through a [runner.Runner].
// Every method is a single git invocation.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/kxue43/project-creator/runner"
)

type (
	Logger interface {
		Printf(string, ...any)
		Println(...any)
	}

	Client struct {
		runner     runner.Runner
		logger     Logger
		executable string
	}

	// CommandError is returned when git ran but exited non-zero.
	CommandError struct {
		Stderr   string
		Args     []string
		ExitCode int
	}
)

const Origin = "origin"

// environment keeps git from blocking on a credential prompt nobody can answer.
var environment = []string{"GIT_TERMINAL_PROMPT=0"}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("git %s exited with code %d", strings.Join(e.Args, " "), e.ExitCode)
	}

	return fmt.Sprintf("git %s exited with code %d: %s", strings.Join(e.Args, " "), e.ExitCode, e.Stderr)
}

// NewClient returns a client that runs executable, "git" when empty.
func NewClient(r runner.Runner, logger Logger, executable string) *Client {
	if executable == "" {
		executable = "git"
	}

	if e, ok := r.(runner.Exec); ok {
		e.Env = append(append([]string(nil), e.Env...), environment...)
		r = e
	}

	return &Client{runner: r, logger: logger, executable: executable}
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, dir, c.executable, args...)
	if err != nil {
		return "", fmt.Errorf("failed to run git %s: %w", args[0], err)
	}

	if res.ExitCode != 0 {
		stderr := strings.TrimSpace(res.Stderr)

		if c.logger != nil {
			c.logger.Printf("Error running %s: %s\n", strings.Join(args, " "), stderr)
		}

		return "", &CommandError{Args: args, ExitCode: res.ExitCode, Stderr: stderr}
	}

	return strings.TrimSpace(res.Stdout), nil
}

func (c *Client) Init(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, "init")

	return err
}

func (c *Client) AddRemote(ctx context.Context, dir, name, url string) error {
	_, err := c.run(ctx, dir, "remote", "add", name, url)

	return err
}

func (c *Client) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	return c.run(ctx, dir, "remote", "get-url", name)
}

// AddAll stages everything under dir.
func (c *Client) AddAll(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, "add", ".")

	return err
}

func (c *Client) Commit(ctx context.Context, dir, message string) error {
	_, err := c.run(ctx, dir, "commit", "-m", message)

	return err
}

// Push pushes branch to remote and records it as the upstream.
func (c *Client) Push(ctx context.Context, dir, remote, branch string) error {
	_, err := c.run(ctx, dir, "push", "-u", remote, branch)

	return err
}

// CurrentBranch is the branch HEAD points to, committed or not.
func (c *Client) CurrentBranch(ctx context.Context, dir string) (string, error) {
	return c.run(ctx, dir, "symbolic-ref", "--short", "HEAD")
}
