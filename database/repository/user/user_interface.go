package userRepo

import (
	"context"

	"eventra/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
// Lookups return (nil, nil) when no document matches.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs retrieves the users with the given IDs, without secrets.
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	// UpdateSetDocument applies a $set of the given fields.
	UpdateSetDocument(ctx context.Context, id string, fields bson.M) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}
