package os_helper

import (
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . OsHelper
type OsHelper interface {
	RunCommand(executable string, args ...string) (string, error)
	FileExists(filename string) bool
	FileSize(filename string) (int64, error)
	ReadFile(filename string) (string, error)
	WriteStringToFile(filename string, contents string) error
	RemoveGlob(pattern string) ([]string, error)
	MkdirAll(path string, perm os.FileMode) error
	Now() time.Time
	Sleep(duration time.Duration)
}

type OsHelperImpl struct{}

func NewImpl() *OsHelperImpl {
	return &OsHelperImpl{}
}

// Runs command with stdout and stderr pipes connected to process
func (h OsHelperImpl) RunCommand(executable string, args ...string) (string, error) {
	cmd := exec.Command(executable, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), errors.Wrapf(err, "error running %q", executable)
	}
	return string(out), nil
}

func (h OsHelperImpl) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return (err == nil)
}

func (h OsHelperImpl) FileSize(filename string) (int64, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (h OsHelperImpl) ReadFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Overwrite the contents atomically, creating the file if necessary
func (h OsHelperImpl) WriteStringToFile(filename string, contents string) error {
	return renameio.WriteFile(filename, []byte(contents), 0644)
}

// RemoveGlob deletes every file matching pattern and returns the removed paths.
func (h OsHelperImpl) RemoveGlob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}

	var removed []string
	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return removed, errors.Wrapf(err, "error removing %q", match)
		}
		removed = append(removed, match)
	}

	return removed, nil
}

func (h OsHelperImpl) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (h OsHelperImpl) Now() time.Time {
	return time.Now()
}

func (h OsHelperImpl) Sleep(duration time.Duration) {
	time.Sleep(duration)
}
