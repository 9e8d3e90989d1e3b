// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package token

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRecords(t *testing.T, path string) []Record {
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := decodeRecords(data)
	require.NoError(t, err)

	return records
}

type addResult struct {
	ok  bool
	err error
}

func TestSaveWaitsForExclusiveLock(t *testing.T) {
	a := assert.New(t)

	s, err := NewFileStore(filepath.Join(t.TempDir(), "tokens.json"), FromRecord, nil)
	require.NoError(t, err)

	tok, err := FromRecord(Record{Token: "abc", Type: TypeAccess, UserID: "42", ValidUntil: 1999999999})
	require.NoError(t, err)

	// another holder of the same lock file
	l, err := acquireLock(s.Path() + ".lock")
	require.NoError(t, err)

	done := make(chan addResult, 1)
	go func() {
		ok, err := s.Add(tok)
		done <- addResult{ok: ok, err: err}
	}()

	select {
	case <-done:
		a.FailNow("saving must block while the lock is held elsewhere")
	case <-time.After(200 * time.Millisecond):
	}

	// the backing file is still untouched
	a.Empty(readRecords(t, s.Path()))

	require.NoError(t, l.release())

	select {
	case r := <-done:
		a.NoError(r.err)
		a.True(r.ok)
	case <-time.After(5 * time.Second):
		a.FailNow("saving didn't resume after the lock was released")
	}

	records := readRecords(t, s.Path())
	a.Len(records, 1)
	a.Equal("abc", records[0].Token)
}
