package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and validates HS256-signed bearer tokens. There is no
// revocation list: a validly-signed, non-expired token is always accepted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the account id, username and role claims.
func (s *TokenService) Issue(identity ports.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(identity.AccountID, 10),
		"username": identity.Username,
		"role":     identity.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate parses and verifies a token, returning the identity it encodes.
// Signature mismatch, a malformed payload, an unexpected signing method, or an
// expired token all fail with domain.ErrInvalidToken.
func (s *TokenService) Validate(token string) (*ports.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	accountID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || accountID <= 0 {
		return nil, domain.ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	return &ports.Identity{AccountID: accountID, Username: username, Role: role}, nil
}
