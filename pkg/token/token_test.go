package token_test

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/agubarev/tokenstore/pkg/token"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromRecord(t *testing.T) {
	a := assert.New(t)

	r := token.Record{
		Token:      "abc",
		Type:       token.TypeAccess,
		UserID:     "42",
		ValidUntil: 1999999999,
	}

	tok, err := token.FromRecord(r)
	a.NoError(err)
	a.Equal("abc", tok.Key())
	a.Equal(token.TypeAccess, tok.Type())
	a.Equal("42", tok.UserID())
	a.Equal(int64(1999999999), tok.ValidUntil())
	a.Equal(r, tok.Record())
	a.Equal(time.Unix(1999999999, 0), tok.ExpiresAt())
}

func TestFromRecordInvalid(t *testing.T) {
	a := assert.New(t)

	records := []token.Record{
		{Token: "", Type: "access", UserID: "42"},
		{Token: "abc", Type: "", UserID: "42"},
		{Token: "abc", Type: "access", UserID: ""},
		{Token: "abc\x00", Type: "access", UserID: "42"},
	}

	for _, r := range records {
		_, err := token.FromRecord(r)
		a.Error(err)
		a.True(errors.Is(err, token.ErrInvalidRecord))
	}
}

func TestFromRecordUnicode(t *testing.T) {
	a := assert.New(t)

	r := token.Record{
		Token:      "ключ-42",
		Type:       "sesión",
		UserID:     "Zoë",
		ValidUntil: 1999999999,
	}

	tok, err := token.FromRecord(r)
	a.NoError(err)
	a.Equal("Zoë", tok.UserID())
	a.Equal(r, tok.Record())

	// control characters are still refused
	_, err = token.FromRecord(token.Record{Token: "abc", Type: "access", UserID: "Zoë\u0007"})
	a.True(errors.Is(err, token.ErrInvalidRecord))
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	before := time.Now()

	tok, err := token.New(token.TypeRefresh, "42", 10*time.Second)
	a.NoError(err)
	a.Equal(token.TypeRefresh, tok.Type())
	a.Equal("42", tok.UserID())
	a.Len(tok.Key(), token.KeyLength*2)

	_, err = hex.DecodeString(tok.Key())
	a.NoError(err)

	a.True(tok.ValidUntil() >= before.Add(10*time.Second).Unix())
	a.True(tok.ValidUntil() <= time.Now().Add(10*time.Second).Unix())

	// default ttl
	tok2, err := token.New(token.TypeRefresh, "42", 0)
	a.NoError(err)
	a.True(tok2.ValidUntil() >= before.Add(token.DefaultTTL).Unix())
	a.NotEqual(tok.Key(), tok2.Key())

	// type is required
	_, err = token.New("", "42", time.Minute)
	a.True(errors.Is(err, token.ErrInvalidRecord))
}

func TestTokenIsValid(t *testing.T) {
	a := assert.New(t)

	tok, err := token.FromRecord(token.Record{
		Token:      "abc",
		Type:       token.TypeSession,
		UserID:     "42",
		ValidUntil: 1000,
	})
	a.NoError(err)

	a.True(tok.IsValid(time.Unix(999, 0)))
	a.True(tok.IsValid(time.Unix(1000, 0)))
	a.False(tok.IsValid(time.Unix(1001, 0)))
}
