// Package scaffold creates a new project directory with a git repository, an origin remote,
// a Python virtual environment and two boilerplate files, then optionally commits and pushes.
//
// Steps run one after another and stop at the first failure. Nothing is rolled back, so a
// failed run can leave a partially scaffolded directory behind.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/kxue43/project-creator/git"
	"github.com/kxue43/project-creator/runner"
)

type (
	Logger interface {
		Printf(string, ...any)
		Println(...any)
	}

	Settings struct {
		Git           string `name:"git" default:"git" help:"Git executable."`
		Python        string `name:"python" default:"python3" help:"Python interpreter used to create the virtual environment."`
		Branch        string `name:"branch" default:"master" help:"Branch pushed by the first commit. Empty means the branch HEAD points to."`
		CommitMessage string `name:"commit-message" default:"Initial commit for {% .ProjectName %} with venv, .gitignore, and requirements.txt" help:"Template of the first commit message. Fields: ProjectName, RemoteURL."`
	}

	Scaffolder struct {
		runner   runner.Runner
		logger   Logger
		git      *git.Client
		message  *template.Template
		settings Settings
	}
)

const DefaultCommitMessage = "Initial commit for {% .ProjectName %} with venv, .gitignore, and requirements.txt"

var (
	ErrInvalidInput    = errors.New("invalid project input")
	ErrDirectoryCreate = errors.New("failed to create project directory")
	ErrInit            = errors.New("failed to initialize git repository")
	ErrRemoteAdd       = errors.New("failed to add remote repository")
	ErrCommit          = errors.New("failed to make the initial commit")
	ErrPush            = errors.New("failed to push to the remote repository")
	ErrUnexpected      = errors.New("unexpected failure")
)

// New returns a Scaffolder running every external command through r.
// A nil logger discards diagnostics.
// Non-nil returned error wraps [ErrInvalidInput].
func New(r runner.Runner, logger Logger, settings Settings) (*Scaffolder, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if settings.Python == "" {
		settings.Python = "python3"
	}

	if settings.CommitMessage == "" {
		settings.CommitMessage = DefaultCommitMessage
	}

	tmplt, err := template.New("commit-message").Delims("{%", "%}").Parse(settings.CommitMessage)
	if err != nil {
		return nil, fmt.Errorf("%w: commit message template: %s", ErrInvalidInput, err.Error())
	}

	return &Scaffolder{
		runner:   r,
		logger:   logger,
		git:      git.NewClient(r, logger, settings.Git),
		message:  tmplt,
		settings: settings,
	}, nil
}

// Scaffold runs every step for req in order.
// Non-nil returned error wraps one of [ErrInvalidInput], [ErrDirectoryCreate], [ErrInit],
// [ErrRemoteAdd], [ErrCommit], [ErrPush] or [ErrUnexpected].
func (s *Scaffolder) Scaffold(ctx context.Context, req Request) (Report, error) {
	if err := req.Validate(); err != nil {
		return Report{}, err
	}

	dir := req.ProjectPath()

	report := Report{
		ProjectName: req.ProjectName,
		ProjectPath: dir,
		RemoteURL:   req.RemoteURL,
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return Report{}, fmt.Errorf("%w: %s", ErrDirectoryCreate, err.Error())
	}

	if err := s.git.Init(ctx, dir); err != nil {
		return Report{}, fmt.Errorf("%w: %s", ErrInit, err.Error())
	}

	if err := s.addOrigin(ctx, dir, req.RemoteURL); err != nil {
		return Report{}, err
	}

	report.VenvCreated = s.createVenv(ctx, dir)

	if err := writeStaticFiles(dir); err != nil {
		return Report{}, fmt.Errorf("%w: %s", ErrUnexpected, err.Error())
	}

	if !req.InitialCommit {
		return report, nil
	}

	branch, err := s.commitAndPush(ctx, dir, req)
	if err != nil {
		return Report{}, err
	}

	report.Branch = branch
	report.Pushed = true

	return report, nil
}

// Non-nil returned error wraps [ErrRemoteAdd].
func (s *Scaffolder) addOrigin(ctx context.Context, dir, url string) error {
	err := s.git.AddRemote(ctx, dir, git.Origin, url)
	if err == nil {
		return nil
	}

	// Scaffolding the same project twice finds origin already in place.
	if existing, err1 := s.git.RemoteURL(ctx, dir, git.Origin); err1 == nil && existing == url {
		s.logger.Printf("Remote %s already points to %s.\n", git.Origin, url)

		return nil
	}

	return fmt.Errorf("%w: %s", ErrRemoteAdd, err.Error())
}

// createVenv is best effort. It reports whether the environment was created.
func (s *Scaffolder) createVenv(ctx context.Context, dir string) bool {
	res, err := s.runner.Run(ctx, dir, s.settings.Python, "-m", "venv", filepath.Join(dir, venvDir))
	if err != nil {
		s.logger.Printf("Skipped virtual environment creation: %s\n", err)

		return false
	}

	if res.ExitCode != 0 {
		s.logger.Printf("Error running %s -m venv: %s\n", s.settings.Python, strings.TrimSpace(res.Stderr))

		return false
	}

	return true
}

// Non-nil returned error wraps [ErrCommit], [ErrPush] or [ErrUnexpected].
func (s *Scaffolder) commitAndPush(ctx context.Context, dir string, req Request) (branch string, err error) {
	msg, err := s.CommitMessage(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to render commit message: %s", ErrUnexpected, err.Error())
	}

	if err = s.git.AddAll(ctx, dir); err != nil {
		return "", fmt.Errorf("%w: %s", ErrCommit, err.Error())
	}

	if err = s.git.Commit(ctx, dir, msg); err != nil {
		return "", fmt.Errorf("%w: %s", ErrCommit, err.Error())
	}

	branch = s.settings.Branch

	if branch == "" {
		branch, err = s.git.CurrentBranch(ctx, dir)
		if err != nil {
			return "", fmt.Errorf("%w: cannot tell which branch to push: %s", ErrPush, err.Error())
		}
	}

	if err = s.git.Push(ctx, dir, git.Origin, branch); err != nil {
		return "", fmt.Errorf("%w: %s", ErrPush, err.Error())
	}

	return branch, nil
}

// CommitMessage renders the first commit message for req.
func (s *Scaffolder) CommitMessage(req Request) (string, error) {
	var msg strings.Builder

	if err := s.message.Execute(&msg, req); err != nil {
		return "", err
	}

	return msg.String(), nil
}
