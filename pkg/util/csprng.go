package util

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

// NewCSPRNG returns a slice of cryptographically secure random bytes
func NewCSPRNG(nbytes int) ([]byte, error) {
	buf := make([]byte, nbytes)

	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "failed to read random bytes")
	}

	return buf, nil
}

// NewCSPRNGHex is a string wrapper for NewCSPRNG
func NewCSPRNGHex(nbytes int) (string, error) {
	bs, err := NewCSPRNG(nbytes)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(bs), nil
}
