package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo(db *mongo.Database) ProviderRepository {
	repo := &MongoProviderRepo{coll: db.Collection("providerprofiles")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create provider indexes", zap.Error(err))
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoProviderRepo) Upsert(ctx context.Context, update models.ProviderProfileUpdate) (*models.ProviderProfile, bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	set := bson.M{"category": update.Category, "updatedAt": now}
	onInsert := bson.M{"id": uuid.New().String(), "rating": update.Rating, "createdAt": now}
	setString(set, onInsert, "bio", update.Bio)
	setString(set, onInsert, "location", update.Location)
	setArray(set, onInsert, "pricingPackages", update.PricingPackages)
	setArray(set, onInsert, "portfolio", update.Portfolio)
	setArray(set, onInsert, "availability", update.Availability)

	// The user field of a new document comes from the equality filter.
	result, err := r.coll.UpdateOne(ctx, bson.M{"user": update.User},
		bson.M{"$set": set, "$setOnInsert": onInsert}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert provider profile for user %s: %w", update.User, err)
	}

	saved, err := r.GetByUser(ctx, update.User)
	if err != nil {
		return nil, false, err
	}
	if saved == nil {
		return nil, false, fmt.Errorf("provider profile for user %s vanished after upsert", update.User)
	}
	return saved, result.UpsertedCount > 0, nil
}

func (r *MongoProviderRepo) findOne(ctx context.Context, filter bson.M) (*models.ProviderProfile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var profile models.ProviderProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider profile: %w", err)
	}
	return &profile, nil
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.ProviderProfile, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoProviderRepo) GetByUser(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	return r.findOne(ctx, bson.M{"user": userID})
}

func (r *MongoProviderRepo) AddPortfolioItem(ctx context.Context, userID string, item models.PortfolioItem) (*models.ProviderProfile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"portfolio": item},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var saved models.ProviderProfile
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(&saved); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to add portfolio item for user %s: %w", userID, err)
	}
	return &saved, nil
}

func (r *MongoProviderRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"user": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete provider profile for user %s: %w", userID, err)
	}
	return result.DeletedCount, nil
}

// setString sets key when value is present and defaults it to "" on insert.
// A key may not appear in both $set and $setOnInsert.
func setString(set, onInsert bson.M, key string, value *string) {
	if value != nil {
		set[key] = *value
		return
	}
	onInsert[key] = ""
}

// setArray sets key when values is non-nil and defaults it to [] on insert.
func setArray[T any](set, onInsert bson.M, key string, values []T) {
	if values != nil {
		set[key] = values
		return
	}
	onInsert[key] = []T{}
}
