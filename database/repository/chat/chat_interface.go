package chatRepo

import (
	"context"

	"eventra/models"
)

// ChatRepository defines data access for chats and their embedded messages.
// Single-document lookups return (nil, nil) when nothing matches.
type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	GetByID(ctx context.Context, id string) (*models.Chat, error)
	FindByEvent(ctx context.Context, eventID string) (*models.Chat, error)
	// FindDirect finds the event-less chat between exactly the two users.
	FindDirect(ctx context.Context, userA, userB string) (*models.Chat, error)
	// GetForUser lists chats the user takes part in, most recently updated first.
	GetForUser(ctx context.Context, userID string) ([]models.Chat, error)
	AddParticipant(ctx context.Context, chatID, userID string) (*models.Chat, error)
	AppendMessage(ctx context.Context, chatID string, msg models.Message) (*models.Chat, error)
	DeleteByParticipant(ctx context.Context, userID string) (int64, error)
	DeleteByEvents(ctx context.Context, eventIDs []string) (int64, error)
}
