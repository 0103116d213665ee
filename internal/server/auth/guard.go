package auth

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/authd/internal/common"
)

// RejectReason classifies why a presented credential was rejected. Reasons
// are for server-side logging only; clients receive a uniform unauthorized
// response regardless of which check failed.
type RejectReason string

const (
	RejectNone      RejectReason = ""
	RejectMissing   RejectReason = "missing"
	RejectMalformed RejectReason = "malformed"
	RejectExpired   RejectReason = "expired"
	RejectRevoked   RejectReason = "revoked"
)

// ParseBearer extracts the token from an "Authorization: Bearer <token>"
// header value. Any other shape is rejected.
func ParseBearer(header string) (string, RejectReason) {
	if header == "" {
		return "", RejectMissing
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerSchemePrefix) {
		return "", RejectMalformed
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", RejectMissing
	}

	return token, RejectNone
}

// Guard is the request-time gate: it verifies an extracted token through the
// codec and then checks the revocation blacklist. Both transports (HTTP
// middleware and the gRPC interceptor) share this pipeline.
type Guard struct {
	issuer    *TokenIssuer
	blacklist *Blacklist
}

func NewGuard(issuer *TokenIssuer, blacklist *Blacklist) *Guard {
	return &Guard{issuer: issuer, blacklist: blacklist}
}

// Evaluate runs the verification pipeline on an extracted token: signature,
// expiry, then revocation. On success it returns the claims and RejectNone.
func (g *Guard) Evaluate(token string) (*TokenClaims, RejectReason) {
	claims, err := g.issuer.Verify(token)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, RejectExpired
		}
		return nil, RejectMalformed
	}

	if g.blacklist.Contains(token) {
		return nil, RejectRevoked
	}

	return claims, RejectNone
}
