package providerRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"eventra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// populateOwner joins the owning user and keeps only its public fields.
func populateOwner() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user",
			"foreignField": "id",
			"as":           "userInfo",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$userInfo", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"userInfo.passwordHash": 0,
			"userInfo.tokenHash":    0,
			"userInfo.fcmToken":     0,
			"userInfo.profileRef":   0,
			"userInfo.createdAt":    0,
			"userInfo.updatedAt":    0,
			"userInfo._id":          0,
		}}},
	}
}

// buildSearchFilter turns criteria into a $match document.
func buildSearchFilter(criteria models.ProviderSearchCriteria) bson.M {
	filter := bson.M{}
	if criteria.Category != "" {
		filter["category"] = bson.M{"$regex": "^" + regexp.QuoteMeta(criteria.Category) + "$", "$options": "i"}
	}
	if criteria.Location != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(criteria.Location), "$options": "i"}
	}
	if criteria.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": criteria.MinRating}
	}
	return filter
}

func (r *MongoProviderRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.ProviderProfileView, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation query failed: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.ProviderProfileView{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode provider profiles: %w", err)
	}
	return profiles, nil
}

func (r *MongoProviderRepo) Search(ctx context.Context, criteria models.ProviderSearchCriteria) ([]models.ProviderProfileView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: buildSearchFilter(criteria)}},
		{{Key: "$sort", Value: bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}}}},
	}
	if criteria.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: criteria.Limit}})
	}
	pipeline = append(pipeline, populateOwner()...)
	return r.aggregate(ctx, pipeline)
}

func (r *MongoProviderRepo) Sample(ctx context.Context, n int) ([]models.ProviderProfileView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}
	pipeline = append(pipeline, populateOwner()...)
	return r.aggregate(ctx, pipeline)
}
