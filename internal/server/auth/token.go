// Package auth contains the credential primitives of the server: the JWT
// codec that issues and verifies access tokens, the bcrypt password hasher,
// and the in-memory blacklist used for server-side token revocation.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/authd/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the payload embedded in an access token: the user id
// (standard sub claim), the user's email, and the issued-at/expiry stamps.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// UserID returns the subject claim.
func (c *TokenClaims) UserID() string {
	return c.Subject
}

// TokenIssuer signs and verifies access tokens with a process-wide HS256
// secret and a fixed TTL. It is stateless: both operations are pure
// functions of the input, the secret, and the clock.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue mints a signed token for the given user. Issued-at is stamped with
// the current time and expiry with now + TTL. The jti claim binds the token
// to a single issuance event: two logins in the same second still produce
// distinct tokens, so revoking one never revokes the other.
func (i *TokenIssuer) Issue(userID, email string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Email: email,
	})

	return token.SignedString(i.secret)
}

// Verify checks the signature and expiry of a token string and returns its
// claims. Expired tokens yield common.ErrTokenExpired; every other failure
// (garbage input, wrong signature, wrong algorithm, missing claims) maps
// uniformly to common.ErrInvalidToken so callers cannot be probed for which
// check failed. Signature comparison inside the jwt library is constant-time.
func (i *TokenIssuer) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
