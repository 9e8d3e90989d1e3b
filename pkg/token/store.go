package token

// Store describes the token store contract interface
// NOTE: implementations aren't required to be safe for concurrent use,
// callers must serialize access themselves (see Manager)
type Store interface {
	// Add stores a new token, returns false without any change if
	// a token with the same key already exists
	Add(t Token) (bool, error)

	// Exists checks whether a token with a given key is stored
	Exists(key string) bool

	// Get returns a stored token, ok is false when it's not found
	Get(key string) (t Token, ok bool)

	// Delete removes a token, deleting an absent token is not a failure
	Delete(t Token) (bool, error)

	// Clear removes all tokens
	Clear()

	// List returns all stored tokens, ordered by key
	List() []Token
}
