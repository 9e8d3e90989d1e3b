package util_test

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agubarev/tokenstore/pkg/util"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	a := assert.New(t)

	root := t.TempDir()
	a.NoError(os.Chmod(root, 0700))

	dir := filepath.Join(root, "a", "b")
	a.False(util.Exists(dir))

	a.NoError(util.CreateDirectoryIfNotExists(dir, 0775))
	a.True(util.Exists(dir))

	// parents created along the way get the same mode
	for _, d := range []string{filepath.Join(root, "a"), dir} {
		info, err := os.Stat(d)
		a.NoError(err)
		a.Equal(os.FileMode(0775), info.Mode().Perm(), d)
	}

	// pre-existing ancestors are left untouched
	info, err := os.Stat(root)
	a.NoError(err)
	a.Equal(os.FileMode(0700), info.Mode().Perm())

	// already exists
	a.NoError(util.CreateDirectoryIfNotExists(dir, 0700))

	// blocked by a regular file
	blocker := filepath.Join(dir, "file")
	a.NoError(os.WriteFile(blocker, nil, 0664))
	a.Error(util.CreateDirectoryIfNotExists(filepath.Join(blocker, "c"), 0775))
}

func TestExpandPath(t *testing.T) {
	a := assert.New(t)

	home, err := homedir.Dir()
	a.NoError(err)

	p, err := util.ExpandPath("  ~/tokens/../tokens.json ")
	a.NoError(err)
	a.Equal(filepath.Join(home, "tokens.json"), p)

	p, err = util.ExpandPath("/tmp/t.dat")
	a.NoError(err)
	a.Equal("/tmp/t.dat", p)

	p, err = util.ExpandPath(" ")
	a.NoError(err)
	a.Empty(p)
}

func TestNewCSPRNGHex(t *testing.T) {
	a := assert.New(t)

	s1, err := util.NewCSPRNGHex(16)
	a.NoError(err)
	a.Len(s1, 32)

	_, err = hex.DecodeString(s1)
	a.NoError(err)

	s2, err := util.NewCSPRNGHex(16)
	a.NoError(err)
	a.NotEqual(s1, s2)
}

func TestPrettyPrint(t *testing.T) {
	a := assert.New(t)

	buf := new(bytes.Buffer)
	a.NoError(util.PrettyPrint(buf, map[string]int{"a": 1}))
	a.Equal("{\n  \"a\": 1\n}", strings.TrimSpace(buf.String()))
}

func TestDefaultLogger(t *testing.T) {
	a := assert.New(t)

	l, err := util.DefaultLogger(true, "")
	a.NoError(err)
	a.NotNil(l)

	dir := filepath.Join(t.TempDir(), "logs")
	l, err = util.DefaultLogger(false, dir)
	a.NoError(err)
	a.NotNil(l)

	l.Error("test error")
	l.Info("test info")

	for _, name := range []string{"errors.log", "standard.log"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		a.NoError(err)
		a.NotEmpty(data)
	}
}
