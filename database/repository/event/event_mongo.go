package eventRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventra/models"
	"eventra/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo(db *mongo.Database) EventRepository {
	repo := &MongoEventRepo{coll: db.Collection("events")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create event indexes", zap.Error(err))
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "organizer", Value: 1}, {Key: "date", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoEventRepo) Create(ctx context.Context, event *models.Event) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *MongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

func (r *MongoEventRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Event, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

func (r *MongoEventRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Event, error) {
	if len(ids) == 0 {
		return []models.Event{}, nil
	}
	return r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *MongoEventRepo) GetByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, bson.M{"organizer": organizerID}, opts)
}

func (r *MongoEventRepo) IDsByOrganizer(ctx context.Context, organizerID string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"id": 1})
	events, err := r.find(ctx, bson.M{"organizer": organizerID}, opts)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids, nil
}

func (r *MongoEventRepo) UpdateSetDocument(ctx context.Context, id string, fields bson.M) (*models.Event, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event models.Event
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update event with id %s: %w", id, err)
	}
	return &event, nil
}

func (r *MongoEventRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	return nil
}

func (r *MongoEventRepo) DeleteByOrganizer(ctx context.Context, organizerID string) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"organizer": organizerID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete events of organizer %s: %w", organizerID, err)
	}
	return result.DeletedCount, nil
}
