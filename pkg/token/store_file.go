package token

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agubarev/tokenstore/pkg/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DirectoryMode is the mode of the backing file directory when it's created
const DirectoryMode os.FileMode = 0775

// FileMode is the mode of the backing file
const FileMode os.FileMode = 0664

var _ Store = (*FileStore)(nil)

// FileStore keeps tokens in memory and writes the whole set
// through to a single backing file on every change
// NOTE: FileStore is not safe for concurrent use; the exclusive lock taken
// while saving only prevents interleaved writes between processes, it doesn't
// protect the load-modify-save window, so two processes mutating the same
// file may lose each other's updates
type FileStore struct {
	path    string
	tokens  map[string]Token
	factory Factory
	logger  *zap.Logger
}

// NewFileStore initializes a token store backed by a given file and loads
// whatever it already contains
// NOTE: an absent or empty file is normalized into an empty token set right
// away, creating the containing directory if necessary
func NewFileStore(path string, f Factory, logger *zap.Logger) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyFilePath
	}

	if f == nil {
		return nil, ErrNilFactory
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	s := &FileStore{
		path:    path,
		tokens:  make(map[string]Token),
		factory: f,
		logger:  logger.Named("[token]"),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Add stores a new token
// NOTE: returns false when the key is already taken, the existing token is
// never overwritten. If saving fails, then the token stays in memory even
// though false is returned along with the error
// NOTE: the token must pass the store's own factory, otherwise the file
// written here couldn't be loaded back
func (s *FileStore) Add(t Token) (bool, error) {
	if _, err := s.factory(t.Record()); err != nil {
		return false, errors.Wrap(err, "token rejected by store factory")
	}

	if s.Exists(t.Key()) {
		return false, nil
	}

	s.tokens[t.Key()] = t

	n, err := s.save()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// Exists checks whether a token with a given key is stored
func (s *FileStore) Exists(key string) bool {
	_, ok := s.tokens[key]
	return ok
}

// Get returns a stored token
func (s *FileStore) Get(key string) (t Token, ok bool) {
	t, ok = s.tokens[key]
	return t, ok
}

// Delete removes a token and saves the rest
// NOTE: succeeds even if the token wasn't there in the first place
func (s *FileStore) Delete(t Token) (bool, error) {
	delete(s.tokens, t.Key())

	if _, err := s.save(); err != nil {
		return false, err
	}

	return true, nil
}

// Clear removes all tokens
// NOTE: a failed save is only logged
func (s *FileStore) Clear() {
	if err := s.clear(); err != nil {
		s.logger.Error("failed to save cleared token set", zap.String("path", s.path), zap.Error(err))
	}
}

// Len returns the number of stored tokens
func (s *FileStore) Len() int {
	return len(s.tokens)
}

// List returns all stored tokens, ordered by key
func (s *FileStore) List() []Token {
	ts := make([]Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		ts = append(ts, t)
	}

	sort.Slice(ts, func(i, j int) bool {
		return ts[i].Key() < ts[j].Key()
	})

	return ts
}

func (s *FileStore) clear() error {
	s.tokens = make(map[string]Token)

	_, err := s.save()

	return err
}

// load reads tokens from the backing file
func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return &StorageIOError{Op: "read", Path: s.path, Err: err}
	}

	records, err := decodeRecords(data)
	if err != nil {
		return &DeserializationError{Path: s.path, Err: err}
	}

	if len(records) == 0 {
		s.logger.Debug("no stored tokens, initializing empty token file", zap.String("path", s.path))
		return s.clear()
	}

	for _, r := range records {
		t, err := s.factory(r)
		if err != nil {
			return errors.Wrapf(err, "failed to build token from %s", s.path)
		}

		if s.Exists(t.Key()) {
			s.logger.Warn("duplicate token record, keeping the last one", zap.String("path", s.path), zap.String("token", maskKey(t.Key())))
		}

		s.tokens[t.Key()] = t
	}

	s.logger.Debug("tokens loaded", zap.String("path", s.path), zap.Int("count", len(s.tokens)))

	return nil
}

// save replaces the backing file with the full token set and returns
// the number of bytes written
// NOTE: the content is written into a temporary file next to the target,
// which is then renamed over it while holding an exclusive lock
func (s *FileStore) save() (n int, err error) {
	dir := filepath.Dir(s.path)

	if err = util.CreateDirectoryIfNotExists(dir, DirectoryMode); err != nil {
		return 0, &StorageIOError{Op: "create directory", Path: dir, Err: err}
	}

	data, err := encodeTokens(s.tokens)
	if err != nil {
		return 0, err
	}

	lock, err := acquireLock(s.path + ".lock")
	if err != nil {
		return 0, &StorageIOError{Op: "lock", Path: s.path, Err: err}
	}

	defer func() {
		if lerr := lock.release(); lerr != nil && err == nil {
			n, err = 0, &StorageIOError{Op: "unlock", Path: s.path, Err: lerr}
		}
	}()

	if n, err = writeFileAtomic(s.path, data, FileMode); err != nil {
		return 0, &StorageIOError{Op: "write", Path: s.path, Err: err}
	}

	s.logger.Debug("tokens saved", zap.String("path", s.path), zap.Int("count", len(s.tokens)), zap.Int("bytes", n))

	return n, nil
}

// writeFileAtomic writes data into a temporary file and renames it over path
func writeFileAtomic(path string, data []byte, mode os.FileMode) (int, error) {
	tmp := path + ".tmp-" + util.NewULID().String()

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return 0, err
	}

	// removing leftovers unless renamed
	defer os.Remove(tmp)

	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return 0, err
	}

	if err = f.Chmod(mode); err != nil {
		f.Close()
		return 0, err
	}

	if err = f.Sync(); err != nil {
		f.Close()
		return 0, err
	}

	if err = f.Close(); err != nil {
		return 0, err
	}

	if err = os.Rename(tmp, path); err != nil {
		return 0, err
	}

	return n, nil
}

// maskKey shortens a token key for logging
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}

	return key[:4] + "..." + key[len(key)-4:]
}
