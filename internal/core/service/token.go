package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/markethub/catalog-api/internal/core/domain"
)

// TokenService issues and validates signed, time-bound bearer tokens. Tokens
// are stateless HS256 JWTs binding {sub: user id, exp: absolute expiry}; they
// are not persisted and cannot be revoked.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenService constructs a TokenService. defaultTTL is the validity window
// callers get via DefaultTTL; non-positive values fall back to 30 minutes.
func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = 30 * time.Minute
	}
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL}
}

// DefaultTTL returns the configured default validity window.
func (s *TokenService) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Issue signs a token for the given subject expiring exactly ttl from now.
// A zero ttl produces a token that is already past its expiry boundary.
func (s *TokenService) Issue(subjectID uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subjectID.String(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate parses and verifies a token, returning its subject id. It fails
// closed: any signature mismatch, malformed structure, wrong algorithm,
// missing subject or past expiry yields ErrUnauthenticated.
func (s *TokenService) Validate(rawToken string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return id, nil
}
