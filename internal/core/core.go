package core

import (
	"fmt"

	"github.com/agubarev/tokenstore/internal/config"
	"github.com/agubarev/tokenstore/pkg/token"
	"github.com/agubarev/tokenstore/pkg/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Core ties the configuration, the token store and its manager together
type Core struct {
	config *config.Config
	store  *token.FileStore
	tokens *token.Manager
	logger *zap.Logger
}

// New initializes the core from a given configuration
func New(c *config.Config) (*Core, error) {
	if c == nil {
		return nil, ErrNilConfig
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	logger, err := util.DefaultLogger(c.Debug, c.LogDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}

	core := &Core{config: c}

	if err = core.SetLogger(logger); err != nil {
		return nil, err
	}

	l := core.Logger()
	l.Debug("initializing token store", zap.String("path", c.FilePath))

	//---------------------------------------------------------------------------
	// initializing token store and manager
	//---------------------------------------------------------------------------
	core.store, err = token.NewFileStore(c.FilePath, token.FromRecord, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize token store")
	}

	core.tokens, err = token.NewManager(core.store)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize token manager")
	}

	if err = core.tokens.SetLogger(logger); err != nil {
		return nil, err
	}

	return core, nil
}

// Config returns the configuration this core is built from
func (c *Core) Config() *config.Config {
	return c.config
}

// Store returns the token store
func (c *Core) Store() *token.FileStore {
	return c.store
}

// TokenManager returns a token manager object
func (c *Core) TokenManager() (*token.Manager, error) {
	if c == nil {
		return nil, ErrNilCore
	}

	if c.tokens == nil {
		return nil, token.ErrNilTokenManager
	}

	return c.tokens, nil
}

// SetLogger setting a primary logger for the core
func (c *Core) SetLogger(logger *zap.Logger) error {
	// if logger is set, then giving it a name
	// to know the log context
	if logger != nil {
		logger = logger.Named("[tokenstore]")
	}

	c.logger = logger

	return nil
}

// Logger returns primary logger if is set, otherwise initializing and returning
// a new default emergency logger
// NOTE: will panic if it finally fails to obtain a logger
func (c *Core) Logger() *zap.Logger {
	if c.logger == nil {
		l, err := zap.NewDevelopment()
		if err != nil {
			// having a working logger is crucial, thus must panic() if initialization fails
			panic(fmt.Errorf("failed to initialize core logger: %s", err))
		}

		c.logger = l
	}

	return c.logger
}
