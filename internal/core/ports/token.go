package ports

// Identity is the caller identity resolved from a validated token. It is
// threaded explicitly through every gated operation; there is no ambient
// security context.
type Identity struct {
	AccountID int64
	Username  string
	Role      string
}

// TokenService issues and validates signed bearer tokens. Tokens are
// stateless: validity is determined by signature and expiry alone, never by a
// server-side store.
type TokenService interface {
	Issue(identity Identity) (string, error)
	// Validate fails with domain.ErrInvalidToken when the signature does not
	// match, the payload is malformed, or the token has expired.
	Validate(token string) (*Identity, error)
}

// PasswordHasher is the one-way credential hashing collaborator.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, digest string) bool
}
