package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create booking indexes", zap.Error(err))
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "event", Value: 1}}},
		{Keys: bson.D{{Key: "provider", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"provider": providerID})
}

func (r *MongoBookingRepo) GetByEvents(ctx context.Context, eventIDs []string) ([]models.Booking, error) {
	if len(eventIDs) == 0 {
		return []models.Booking{}, nil
	}
	return r.find(ctx, bson.M{"event": bson.M{"$in": eventIDs}})
}

func (r *MongoBookingRepo) ExistsForProviderOnEvent(ctx context.Context, providerID, eventID string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider": providerID,
		"event":    eventID,
		"status":   bson.M{"$ne": models.BookingCancelled},
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count > 0, nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, from, to string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update booking status for %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) DeleteByProvider(ctx context.Context, providerID string) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"provider": providerID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings of provider %s: %w", providerID, err)
	}
	return result.DeletedCount, nil
}

func (r *MongoBookingRepo) DeleteByEvents(ctx context.Context, eventIDs []string) (int64, error) {
	if len(eventIDs) == 0 {
		return 0, nil
	}
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"event": bson.M{"$in": eventIDs}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings of events: %w", err)
	}
	return result.DeletedCount, nil
}
