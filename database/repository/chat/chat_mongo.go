package chatRepo

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

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo(db *mongo.Database) ChatRepository {
	repo := &MongoChatRepo{coll: db.Collection("chats")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create chat indexes", zap.Error(err))
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants", Value: 1}, {Key: "updatedAt", Value: -1}}},
		{Keys: bson.D{{Key: "event", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoChatRepo) Create(ctx context.Context, chat *models.Chat) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.Messages == nil {
		chat.Messages = []models.Message{}
	}
	if _, err := r.coll.InsertOne(ctx, chat); err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

func (r *MongoChatRepo) findOne(ctx context.Context, filter bson.M) (*models.Chat, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var chat models.Chat
	if err := r.coll.FindOne(ctx, filter).Decode(&chat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch chat: %w", err)
	}
	return &chat, nil
}

func (r *MongoChatRepo) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoChatRepo) FindByEvent(ctx context.Context, eventID string) (*models.Chat, error) {
	return r.findOne(ctx, bson.M{"event": eventID})
}

func (r *MongoChatRepo) FindDirect(ctx context.Context, userA, userB string) (*models.Chat, error) {
	return r.findOne(ctx, directChatFilter(userA, userB))
}

// directChatFilter matches an event-less chat whose participants are exactly the two users.
func directChatFilter(userA, userB string) bson.M {
	return bson.M{
		"event": bson.M{"$exists": false},
		"participants": bson.M{
			"$size": 2,
			"$all":  bson.A{userA, userB},
		},
	}
}

func (r *MongoChatRepo) GetForUser(ctx context.Context, userID string) ([]models.Chat, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chats: %w", err)
	}
	defer cursor.Close(ctx)

	chats := []models.Chat{}
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, fmt.Errorf("failed to decode chats: %w", err)
	}
	return chats, nil
}

func (r *MongoChatRepo) update(ctx context.Context, chatID string, update bson.M) (*models.Chat, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var chat models.Chat
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": chatID}, update, opts).Decode(&chat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update chat %s: %w", chatID, err)
	}
	return &chat, nil
}

func (r *MongoChatRepo) AddParticipant(ctx context.Context, chatID, userID string) (*models.Chat, error) {
	return r.update(ctx, chatID, bson.M{
		"$addToSet": bson.M{"participants": userID},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
}

func (r *MongoChatRepo) AppendMessage(ctx context.Context, chatID string, msg models.Message) (*models.Chat, error) {
	return r.update(ctx, chatID, bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updatedAt": msg.CreatedAt},
	})
}

func (r *MongoChatRepo) DeleteByParticipant(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"participants": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete chats of user %s: %w", userID, err)
	}
	return result.DeletedCount, nil
}

func (r *MongoChatRepo) DeleteByEvents(ctx context.Context, eventIDs []string) (int64, error) {
	if len(eventIDs) == 0 {
		return 0, nil
	}
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"event": bson.M{"$in": eventIDs}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete chats of events: %w", err)
	}
	return result.DeletedCount, nil
}
