package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/authd/internal/common"
	"github.com/dmitrijs2005/authd/internal/dbx"
	"github.com/dmitrijs2005/authd/internal/server/auth"
	"github.com/dmitrijs2005/authd/internal/server/models"
	usersrepo "github.com/dmitrijs2005/authd/internal/server/repositories/users"
)

// --- fakes ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	createCalls int
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func newAuthService(t *testing.T, repo *fakeUsersRepo) (*AuthService, *auth.Blacklist, *auth.TokenIssuer) {
	t.Helper()
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	blacklist := auth.NewBlacklist()
	s := NewAuthService(nil, &fakeRepoManager{u: repo}, issuer, auth.NewPasswordHasher(), blacklist)
	return s, blacklist, issuer
}

// --- signup ---

func TestSignup_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s, _, issuer := newAuthService(t, repo)

	token, user, err := s.Signup(context.Background(), " Alice ", "Alice@X.com", "Secret1!")
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", user.Name)
	}
	if user.Email != "alice@x.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.ID == "" {
		t.Fatal("expected generated user id")
	}
	if user.PasswordHash == "Secret1!" {
		t.Fatal("password must be stored hashed")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID() != user.ID || claims.Email != user.Email {
		t.Fatalf("token claims mismatch: %q/%q", claims.UserID(), claims.Email)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrEmailExists}
	s, _, _ := newAuthService(t, repo)

	_, _, err := s.Signup(context.Background(), "Alice", "alice@x.com", "Secret1!")
	if !errors.Is(err, common.ErrEmailExists) {
		t.Fatalf("expected common.ErrEmailExists, got %v", err)
	}
}

func TestSignup_StorageFailureIsInternal(t *testing.T) {
	repo := &fakeUsersRepo{createErr: errors.New("connection refused")}
	s, _, _ := newAuthService(t, repo)

	_, _, err := s.Signup(context.Background(), "Alice", "alice@x.com", "Secret1!")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}

// --- login ---

func registeredUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := auth.NewPasswordHasher().Hash(password)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	return &models.User{ID: "id-1", Name: "Alice", Email: "alice@x.com", PasswordHash: hash}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUsersRepo{byEmailOut: registeredUser(t, "Secret1!")}
	s, _, issuer := newAuthService(t, repo)

	token, user, err := s.Login(context.Background(), "alice@x.com", "Secret1!")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != "id-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	unknown := &fakeUsersRepo{byEmailErr: common.ErrorNotFound}
	s1, _, _ := newAuthService(t, unknown)
	_, _, errUnknown := s1.Login(context.Background(), "nobody@x.com", "Secret1!")

	wrongPass := &fakeUsersRepo{byEmailOut: registeredUser(t, "Secret1!")}
	s2, _, _ := newAuthService(t, wrongPass)
	_, _, errWrong := s2.Login(context.Background(), "alice@x.com", "other")

	if !errors.Is(errUnknown, common.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected common.ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrong, common.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected common.ErrInvalidCredentials, got %v", errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("errors must be identical: %q vs %q", errUnknown, errWrong)
	}
}

func TestLogin_StorageFailureIsInternal(t *testing.T) {
	repo := &fakeUsersRepo{byEmailErr: errors.New("connection refused")}
	s, _, _ := newAuthService(t, repo)

	_, _, err := s.Login(context.Background(), "alice@x.com", "Secret1!")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}

// --- logout ---

func TestLogout_RevokesValidToken(t *testing.T) {
	s, blacklist, issuer := newAuthService(t, &fakeUsersRepo{})

	token, err := issuer.Issue("id-1", "alice@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if err := s.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if !blacklist.Contains(token) {
		t.Fatal("expected token on the blacklist after logout")
	}

	// codec-level verification alone still succeeds
	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("codec must still verify a revoked token: %v", err)
	}
}

func TestLogout_RejectsEmptyToken(t *testing.T) {
	s, blacklist, _ := newAuthService(t, &fakeUsersRepo{})

	if err := s.Logout(context.Background(), ""); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
	if blacklist.Len() != 0 {
		t.Fatal("blacklist must stay empty")
	}
}

func TestLogout_RejectsExpiredToken(t *testing.T) {
	s, blacklist, _ := newAuthService(t, &fakeUsersRepo{})

	expired := auth.NewTokenIssuer([]byte("test-secret"), -time.Second)
	token, err := expired.Issue("id-1", "alice@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if err := s.Logout(context.Background(), token); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
	if blacklist.Contains(token) {
		t.Fatal("expired token must not be recorded")
	}
}

func TestLogout_RejectsMalformedToken(t *testing.T) {
	s, blacklist, _ := newAuthService(t, &fakeUsersRepo{})

	if err := s.Logout(context.Background(), "garbage"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
	if blacklist.Len() != 0 {
		t.Fatal("blacklist must stay empty")
	}
}

func TestRevokedTokens_Snapshot(t *testing.T) {
	s, blacklist, _ := newAuthService(t, &fakeUsersRepo{})

	blacklist.Add("tok-1")
	blacklist.Add("tok-2")

	got := s.RevokedTokens()
	if len(got) != 2 {
		t.Fatalf("expected 2 revoked tokens, got %d", len(got))
	}
}
