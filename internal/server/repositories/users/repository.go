// Package users defines the user store contract and its postgres
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/authd/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
