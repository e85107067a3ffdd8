package scaffold

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type (
	WriteHook func(io.Writer) error
)

const (
	gitignoreName    = ".gitignore"
	requirementsName = "requirements.txt"
	venvDir          = "venv"
)

var (
	//go:embed "data/python/gitignore"
	gitignoreContents []byte
)

func Bytes(contents []byte) WriteHook {
	return func(fd io.Writer) error {
		_, err := fd.Write(contents)

		return err
	}
}

// WriteToFile creates or truncates dir/name and fills it through hook.
func WriteToFile(dir, name string, hook WriteHook) (err error) {
	fd, err := os.Create(filepath.Clean(filepath.Join(dir, name)))
	if err != nil {
		return fmt.Errorf("failed to create %q file: %w", name, err)
	}

	err = hook(fd)
	if err != nil {
		_ = fd.Close()

		return fmt.Errorf("failed to write to %q: %w", name, err)
	}

	err = fd.Close()
	if err != nil {
		return fmt.Errorf("failed to close %q after writing: %w", name, err)
	}

	return nil
}

func touch(path string) error {
	fd, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create empty file %q: %w", path, err)
	}

	defer func() { _ = fd.Close() }()

	return nil
}

func writeStaticFiles(dir string) error {
	if err := WriteToFile(dir, gitignoreName, Bytes(gitignoreContents)); err != nil {
		return err
	}

	return touch(filepath.Join(dir, requirementsName))
}
