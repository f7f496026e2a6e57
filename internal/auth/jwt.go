// Package auth provides credential hashing, access tokens and the HTTP
// middleware that authenticates principals.
//
// TOKEN FLOW:
//  1. POST /auth/token with username + password (or the GitHub callback)
//  2. The server verifies the bcrypt credential and issues a signed JWT
//  3. Clients send it back as "Authorization: Bearer <jwt>" (or the "token"
//     cookie set by the GitHub flow)
//  4. Middleware validates the signature and expiry and puts the principal id
//     in the request context
//
// The token is stateless: validating it needs only the HMAC secret, no DB
// lookup.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"
)

const issuer = "snack-api"

// DefaultTokenTTL is used when NewTokenService is given a zero TTL.
const DefaultTokenTTL = 15 * time.Minute

// ErrTokenExpired is returned by Validate for tokens past their expiry.
var ErrTokenExpired = errors.New("auth: token expired")

// TokenService handles JWT creation and validation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given HMAC secret.
// The secret should be at least 32 bytes of random data in production
// (JWT_SECRET=$(openssl rand -hex 32)); fewer than 16 is rejected.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// TTL reports how long issued tokens stay valid.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate signs a token for the principal with the configured TTL.
//
// Claims:
//   - sub: the principal id in decimal
//   - jti: a fresh xid, so two tokens issued in the same second still differ
//   - iss, iat, exp
func (s *TokenService) Generate(principalID int64) (string, error) {
	return s.GenerateWithDuration(principalID, s.ttl)
}

// GenerateWithDuration signs a token with a custom lifetime.
// Tests use negative durations to mint already-expired tokens.
func (s *TokenService) GenerateWithDuration(principalID int64, d time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		ID:        xid.New().String(),
		Subject:   strconv.FormatInt(principalID, 10),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(d)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a JWT string and returns the principal id
// from its subject.
//
// WithValidMethods pins HS256, which rules out "alg: none" and
// algorithm-confusion tokens.
func (s *TokenService) Validate(tokenStr string) (int64, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("auth: invalid token: %w", err)
	}
	if !token.Valid {
		return 0, errors.New("auth: invalid token claims")
	}

	principalID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || principalID <= 0 {
		return 0, fmt.Errorf("auth: token subject %q is not a principal id", claims.Subject)
	}

	return principalID, nil
}
