package ports

import "github.com/nabilsaied15/bibliotheque-api/internal/core/domain"

// Claims is the structured data recovered from a verified session token.
// The embedded role is a snapshot taken at issuance; authorization decisions
// always use the live user record fetched by the identity resolver.
type Claims struct {
	Subject string
	Email   string
	Role    string
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify checks the signature first, then expiry. Failures are
	// distinguishable: domain.ErrTokenExpired for an expired token,
	// domain.ErrTokenInvalid for anything malformed or tampered.
	Verify(raw string) (*Claims, error)
}
