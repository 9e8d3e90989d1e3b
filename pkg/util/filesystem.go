package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// Exists checks whether the file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// CreateDirectoryIfNotExists creates directory if it doesn't yet exist
// NOTE: the mode is applied explicitly to every directory created along
// the way so that the process umask doesn't narrow it down, directories
// which already existed are left as they are
func CreateDirectoryIfNotExists(path string, mode os.FileMode) error {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.Errorf("%s exists but is not a directory", path)
		}

		return nil
	}

	if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to stat directory %s", path)
	}

	// missing directories, the deepest first
	missing := []string{path}
	for p := filepath.Dir(path); p != filepath.Dir(p); p = filepath.Dir(p) {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			break
		}

		missing = append(missing, p)
	}

	if err := os.MkdirAll(path, mode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}

	for i := len(missing) - 1; i >= 0; i-- {
		if err := os.Chmod(missing[i], mode); err != nil {
			return errors.Wrapf(err, "failed to set mode %o on directory %s", mode, missing[i])
		}
	}

	return nil
}

// ExpandPath trims the path, resolves a leading `~` into the user's
// home directory and cleans the result
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to expand path %s", path)
	}

	return filepath.Clean(expanded), nil
}
