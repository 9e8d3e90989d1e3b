package token

import (
	"time"
	"unicode"

	"github.com/agubarev/tokenstore/pkg/util"
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
)

// KeyLength is the number of random bytes behind a generated token key
const KeyLength = 32

// DefaultTTL defines the default token longevity duration from the moment of its creation
const DefaultTTL = 1 * time.Hour

// predefined token types
// NOTE: the store doesn't interpret types, any non-empty string is allowed
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
	TypeSession = "session"
)

// Record is the raw representation of a token, the field order
// is the order in which they're serialized
type Record struct {
	Token      string `json:"token" valid:"required,printable"`
	Type       string `json:"type" valid:"required,printable"`
	UserID     string `json:"user_id" valid:"required,printable"`
	ValidUntil int64  `json:"valid_until"`
}

func init() {
	// unlike govalidator's printableascii, any printable unicode is fine
	govalidator.TagMap["printable"] = govalidator.Validator(func(str string) bool {
		for _, r := range str {
			if !unicode.IsPrint(r) {
				return false
			}
		}

		return true
	})
}

// Factory builds a token value from its raw record
type Factory func(r Record) (Token, error)

// Token represents an authentication or session credential
// NOTE: tokens are immutable values, obtainable only through a Factory
// or New, so every token held by a store has been validated
type Token struct {
	key        string
	kind       string
	userID     string
	validUntil int64
}

// FromRecord is the default token factory
func FromRecord(r Record) (t Token, err error) {
	if _, err = govalidator.ValidateStruct(r); err != nil {
		return t, errors.Wrapf(ErrInvalidRecord, "%s", err)
	}

	t = Token{
		key:        r.Token,
		kind:       r.Type,
		userID:     r.UserID,
		validUntil: r.ValidUntil,
	}

	return t, nil
}

// New creates a new token with a CSPRNG key that stays valid
// for a given duration (or DefaultTTL if ttl is not positive)
func New(kind string, userID string, ttl time.Duration) (t Token, err error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	key, err := util.NewCSPRNGHex(KeyLength)
	if err != nil {
		return t, errors.Wrap(err, "failed to generate token key")
	}

	return FromRecord(Record{
		Token:      key,
		Type:       kind,
		UserID:     userID,
		ValidUntil: time.Now().Add(ttl).Unix(),
	})
}

// Key returns the unique token string
func (t Token) Key() string { return t.key }

// Type returns token classification, i.e. "access" or "refresh"
func (t Token) Type() string { return t.kind }

// UserID returns the owner's identifier
func (t Token) UserID() string { return t.userID }

// ValidUntil returns the expiration moment as Unix seconds
func (t Token) ValidUntil() int64 { return t.validUntil }

// ExpiresAt returns the expiration moment
func (t Token) ExpiresAt() time.Time { return util.TimeFromUnix(t.validUntil) }

// IsValid checks whether the token is still within its validity window
func (t Token) IsValid(now time.Time) bool {
	return now.Unix() <= t.validUntil
}

// Record returns the raw representation of this token
func (t Token) Record() Record {
	return Record{
		Token:      t.key,
		Type:       t.kind,
		UserID:     t.userID,
		ValidUntil: t.validUntil,
	}
}
