package token

import (
	"fmt"

	"github.com/pkg/errors"
)

// errors
var (
	ErrStorageIO        = errors.New("token storage i/o failure")
	ErrDeserialization  = errors.New("token storage content is malformed")
	ErrNilFactory       = errors.New("token factory is nil")
	ErrEmptyFilePath    = errors.New("token storage file path is empty")
	ErrNilTokenStore    = errors.New("token store is nil")
	ErrNilTokenManager  = errors.New("token manager is nil")
	ErrInvalidRecord    = errors.New("invalid token record")
	ErrTokenNotFound    = errors.New("token not found")
	ErrTokenExpired     = errors.New("token is expired")
	ErrDuplicateToken   = errors.New("duplicate token")
	ErrUnconfirmedWrite = errors.New("token storage write is unconfirmed")
)

// StorageIOError is returned whenever the backing file or its directory
// cannot be created, read, written or locked
type StorageIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageIOError) Error() string {
	return fmt.Sprintf("%s: failed to %s %s: %s", ErrStorageIO, e.Op, e.Path, e.Err)
}

func (e *StorageIOError) Cause() error  { return e.Err }
func (e *StorageIOError) Unwrap() error { return e.Err }

// Is reports whether the target is ErrStorageIO
func (e *StorageIOError) Is(target error) bool { return target == ErrStorageIO }

// DeserializationError is returned when the backing file content doesn't
// parse as a sequence of token records
type DeserializationError struct {
	Path string
	Err  error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrDeserialization, e.Path, e.Err)
}

func (e *DeserializationError) Cause() error  { return e.Err }
func (e *DeserializationError) Unwrap() error { return e.Err }

// Is reports whether the target is ErrDeserialization
func (e *DeserializationError) Is(target error) bool { return target == ErrDeserialization }
