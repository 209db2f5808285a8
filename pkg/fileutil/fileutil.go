// Package fileutil reads and writes text files for command-line tools.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrReadFailed matches every error returned by [Read].
	ErrReadFailed = errors.New("failed to read contents from file")
	// ErrWriteFailed matches every error returned by [Write].
	ErrWriteFailed = errors.New("failed to write contents to file")
)

// FileError records a failed file operation and the underlying cause.
type FileError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return e.sentinel().Error() + ": " + e.Path
	}
	return fmt.Sprintf("%s %s: %v", e.sentinel(), e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *FileError) sentinel() error {
	if e.Op == "write" {
		return ErrWriteFailed
	}
	return ErrReadFailed
}

// Read returns the contents of the file at path. A leading "~" is expanded to the current
// user's home directory.
func Read(path string) (string, error) {
	location, err := expandHome(path)
	if err != nil {
		return "", &FileError{Op: "read", Path: path, Err: err}
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return "", &FileError{Op: "read", Path: location, Err: err}
	}
	return string(data), nil
}

// Write writes contents to the file at path, creating or truncating it. When
// inCurrentDir is true, path is resolved against the current working directory;
// otherwise it is used as given.
func Write(contents, path string, inCurrentDir bool) error {
	location := path
	if inCurrentDir {
		wd, err := os.Getwd()
		if err != nil {
			return &FileError{Op: "write", Path: path, Err: err}
		}
		location = filepath.Join(wd, path)
	}
	if err := writeFileSync(location, []byte(contents), 0o644); err != nil {
		return &FileError{Op: "write", Path: location, Err: err}
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// writeFileSync writes data to a file named by name and syncs it to disk.
func writeFileSync(name string, data []byte, perm os.FileMode) (err error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
