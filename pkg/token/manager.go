package token

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Manager is a token store facade which serializes access to the store
// and takes care of the validity window, which the store doesn't interpret
type Manager struct {
	store  Store
	logger *zap.Logger
	sync.RWMutex
}

// NewManager returns an initialized token manager
func NewManager(s Store) (*Manager, error) {
	if s == nil {
		return nil, ErrNilTokenStore
	}

	m := &Manager{
		store: s,
	}

	return m, nil
}

// SetLogger assigns a logger to this manager
func (m *Manager) SetLogger(logger *zap.Logger) error {
	if logger != nil {
		logger = logger.Named("[token]")
	}

	m.logger = logger

	return nil
}

// Logger returns own logger
func (m *Manager) Logger() *zap.Logger {
	if m.logger == nil {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(fmt.Errorf("failed to initialize token manager logger: %s", err))
		}

		m.logger = l
	}

	return m.logger
}

// Validate validates token manager
func (m *Manager) Validate() error {
	if m == nil {
		return ErrNilTokenManager
	}

	if m.store == nil {
		return ErrNilTokenStore
	}

	return nil
}

// Issue creates, stores and returns a new token
func (m *Manager) Issue(kind string, userID string, ttl time.Duration) (t Token, err error) {
	t, err = New(kind, userID, ttl)
	if err != nil {
		return t, errors.Wrapf(err, "failed to initialize new token: %s", kind)
	}

	if err = m.Register(t); err != nil {
		return t, err
	}

	m.Logger().Debug(
		"token issued",
		zap.String("type", t.Type()),
		zap.String("user_id", t.UserID()),
		zap.Time("expires_at", t.ExpiresAt()),
	)

	return t, nil
}

// Register stores an externally built token
func (m *Manager) Register(t Token) error {
	m.Lock()
	defer m.Unlock()

	// paranoid check; making sure there is no existing token with such key
	if m.store.Exists(t.Key()) {
		return ErrDuplicateToken
	}

	ok, err := m.store.Add(t)
	if err != nil {
		return errors.Wrap(err, "failed to store new token")
	}

	if !ok {
		return ErrUnconfirmedWrite
	}

	return nil
}

// Get obtains a token or returns ErrTokenNotFound
func (m *Manager) Get(key string) (t Token, err error) {
	m.RLock()
	t, ok := m.store.Get(key)
	m.RUnlock()

	if !ok {
		return t, ErrTokenNotFound
	}

	return t, nil
}

// Checkin returns a token only if it's still within its validity window
func (m *Manager) Checkin(key string) (t Token, err error) {
	t, err = m.Get(key)
	if err != nil {
		return t, err
	}

	if !t.IsValid(time.Now()) {
		return t, ErrTokenExpired
	}

	return t, nil
}

// Revoke deletes a token by its key
func (m *Manager) Revoke(key string) error {
	m.Lock()
	defer m.Unlock()

	t, ok := m.store.Get(key)
	if !ok {
		return ErrTokenNotFound
	}

	return m.delete(t)
}

// List returns tokens of a given type, or all tokens if kind is empty
func (m *Manager) List(kind string) []Token {
	m.RLock()
	all := m.store.List()
	m.RUnlock()

	if kind == "" {
		return all
	}

	ts := make([]Token, 0)
	for _, t := range all {
		if t.Type() == kind {
			ts = append(ts, t)
		}
	}

	return ts
}

// Cleanup removes tokens which are expired by a given moment and returns
// how many were removed
// NOTE: failing deletions are logged and skipped, the first error is returned
// once every expired token was attempted
func (m *Manager) Cleanup(now time.Time) (removed int, err error) {
	m.Lock()
	defer m.Unlock()

	for _, t := range m.store.List() {
		if t.IsValid(now) {
			continue
		}

		if derr := m.delete(t); derr != nil {
			m.Logger().Warn("failed to delete expired token", zap.String("token", maskKey(t.Key())), zap.Error(derr))

			if err == nil {
				err = derr
			}

			continue
		}

		removed++
	}

	return removed, err
}

// Clear removes all tokens
func (m *Manager) Clear() {
	m.Lock()
	m.store.Clear()
	m.Unlock()
}

func (m *Manager) delete(t Token) error {
	ok, err := m.store.Delete(t)
	if err != nil {
		return errors.Wrapf(err, "failed to delete token: %s", maskKey(t.Key()))
	}

	if !ok {
		return ErrUnconfirmedWrite
	}

	return nil
}
