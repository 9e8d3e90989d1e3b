package core_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agubarev/tokenstore/internal/config"
	"github.com/agubarev/tokenstore/internal/core"
	"github.com/agubarev/tokenstore/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	c, err := core.New(nil)
	a.EqualError(err, core.ErrNilConfig.Error())
	a.Nil(c)

	dir := t.TempDir()
	cfg := &config.Config{
		FilePath: filepath.Join(dir, "data", "tokens.json"),
		LogDir:   filepath.Join(dir, "logs"),
		TTL:      time.Hour,
	}

	c, err = core.New(cfg)
	a.NoError(err)
	a.NotNil(c)
	a.Equal(cfg, c.Config())
	a.NotNil(c.Logger())
	a.Equal(cfg.FilePath, c.Store().Path())

	_, err = os.Stat(cfg.FilePath)
	a.NoError(err)

	_, err = os.Stat(filepath.Join(cfg.LogDir, "standard.log"))
	a.NoError(err)

	m, err := c.TokenManager()
	a.NoError(err)

	tok, err := m.Issue(token.TypeAccess, "42", cfg.TTL)
	a.NoError(err)
	a.True(c.Store().Exists(tok.Key()))
}

func TestNewInvalidConfig(t *testing.T) {
	a := assert.New(t)

	c, err := core.New(&config.Config{TTL: time.Hour})
	a.Error(err)
	a.Nil(c)
}
