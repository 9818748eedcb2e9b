package userRepo

import (
	"context"
	"fmt"
	"time"

	"eventra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateEmail is returned when the unique email index rejects an insert or update.
var ErrDuplicateEmail = fmt.Errorf("email already registered")

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateSetDocument wraps fields in $set and stamps updatedAt.
func (r *MongoUserRepo) UpdateSetDocument(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}

// Delete removes a user document by its ID.
func (r *MongoUserRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}
