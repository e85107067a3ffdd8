package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

type (
	Request struct {
		ProjectName   string
		LocalBasePath string
		RemoteURL     string
		InitialCommit bool
	}
)

// DeriveProjectName returns the last "/"-separated segment of url without a trailing ".git".
func DeriveProjectName(url string) string {
	name := url[strings.LastIndex(url, "/")+1:]

	return strings.TrimSuffix(name, ".git")
}

func (r Request) ProjectPath() string {
	return filepath.Join(r.LocalBasePath, r.ProjectName)
}

// Non-nil returned error wraps [ErrInvalidInput].
func (r Request) Validate() error {
	name := strings.TrimSpace(r.ProjectName)

	if name == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}

	if name != r.ProjectName {
		return fmt.Errorf("%w: project name %q has leading or trailing spaces", ErrInvalidInput, r.ProjectName)
	}

	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: project name %q must be a single directory name", ErrInvalidInput, r.ProjectName)
	}

	if r.LocalBasePath == "" {
		return fmt.Errorf("%w: local base path is required", ErrInvalidInput)
	}

	info, err := os.Stat(r.LocalBasePath)
	if err != nil {
		return fmt.Errorf("%w: local base path %q is not accessible: %s", ErrInvalidInput, r.LocalBasePath, err.Error())
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: local base path %q is not a directory", ErrInvalidInput, r.LocalBasePath)
	}

	return validateRemoteURL(r.RemoteURL)
}

func validateRemoteURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("%w: remote repository URL is required", ErrInvalidInput)
	}

	ep, err := transport.NewEndpoint(url)
	if err != nil {
		return fmt.Errorf("%w: %q is not a repository URL: %s", ErrInvalidInput, url, err.Error())
	}

	// Anything without a scheme parses as a local path, relative ones included. git decides
	// whether it is usable when origin is added.
	if ep.Protocol == "file" {
		return nil
	}

	if ep.Host == "" {
		return fmt.Errorf("%w: repository URL %q has no host", ErrInvalidInput, url)
	}

	return nil
}
