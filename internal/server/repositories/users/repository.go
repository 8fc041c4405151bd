// Package users persists user records.
package users

import (
	"context"

	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
)

// Repository is the user record store. Lookups of unknown users return
// common.ErrorNotFound; Create and Update report username or provider id
// collisions as common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// GetUserByIDForUpdate reads the user and holds a row lock until the
	// surrounding transaction ends.
	GetUserByIDForUpdate(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
