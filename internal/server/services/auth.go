// Package services contains server-side business logic. This file implements
// AuthService, which handles signup, login, and logout: it authenticates or
// creates users through the user store, issues access tokens, and records
// revoked tokens in the blacklist.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/authd/internal/common"
	"github.com/dmitrijs2005/authd/internal/server/auth"
	"github.com/dmitrijs2005/authd/internal/server/models"
	"github.com/dmitrijs2005/authd/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// AuthService provides the credential lifecycle operations:
//   - Signup: create a user and mint a token
//   - Login: verify credentials and mint a token
//   - Logout: verify a presented token and revoke it
type AuthService struct {
	db        *sql.DB
	repos     repomanager.RepositoryManager
	issuer    *auth.TokenIssuer
	hasher    *auth.PasswordHasher
	blacklist *auth.Blacklist
}

// NewAuthService constructs an AuthService from its collaborators. The
// blacklist is shared with the access guard.
func NewAuthService(db *sql.DB, rm repomanager.RepositoryManager, issuer *auth.TokenIssuer, hasher *auth.PasswordHasher, blacklist *auth.Blacklist) *AuthService {
	return &AuthService{
		db:        db,
		repos:     rm,
		issuer:    issuer,
		hasher:    hasher,
		blacklist: blacklist,
	}
}

// Signup creates a new user and issues an access token. A duplicate email
// yields common.ErrEmailExists; any other storage failure is reported as
// common.ErrorInternal without detail.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, *models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: hash,
	}

	repo := s.repos.Users(s.db)
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			return "", nil, common.ErrEmailExists
		}
		return "", nil, common.ErrorInternal
	}

	token, err := s.issuer.Issue(created.ID, created.Email)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, created, nil
}

// Login verifies the email/password pair and issues an access token.
// An unknown email and a wrong password are indistinguishable to the
// caller: both yield common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

// Logout revokes a token. The token must still pass full verification:
// an empty, malformed, or already-expired token yields
// common.ErrInvalidToken and is not recorded.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrInvalidToken
	}

	if _, err := s.issuer.Verify(token); err != nil {
		return common.ErrInvalidToken
	}

	s.blacklist.Add(token)
	return nil
}

// RevokedTokens returns a snapshot of the blacklist for administrative
// inspection.
func (s *AuthService) RevokedTokens() []string {
	return s.blacklist.Tokens()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
