package token

import (
	"os"

	"github.com/pkg/errors"
)

// fileLock is an exclusive advisory lock held on a lock file
type fileLock struct {
	f *os.File
}

// acquireLock opens (or creates) the lock file and blocks
// until an exclusive lock is obtained
func acquireLock(path string) (*fileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0664)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open lock file")
	}

	if err = lockExclusive(f); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "failed to acquire exclusive lock")
	}

	return &fileLock{f: f}, nil
}

// release unlocks and closes the lock file
func (l *fileLock) release() error {
	if err := unlock(l.f); err != nil {
		l.f.Close()
		return errors.Wrap(err, "failed to release lock")
	}

	return l.f.Close()
}
