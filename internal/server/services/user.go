package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/authd/internal/common"
	"github.com/dmitrijs2005/authd/internal/server/models"
	"github.com/dmitrijs2005/authd/internal/server/repositories/repomanager"
)

// UserService exposes read access to user records for authenticated callers.
type UserService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repos: rm}
}

// GetProfile returns the user record for the given id. A record that has
// vanished since the token was issued yields common.ErrorNotFound.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
