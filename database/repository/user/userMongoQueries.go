package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var safeProjection = bson.M{"passwordHash": 0, "tokenHash": 0, "fcmToken": 0}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by its unique ID (full document).
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a user by its email address (full document).
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return user, nil
}

// GetByIDs retrieves users by ID while excluding sensitive fields.
func (r *MongoUserRepo) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(safeProjection)
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
