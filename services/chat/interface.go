package chat

import (
	"context"

	bookingRepo "eventra/database/repository/booking"
	chatRepo "eventra/database/repository/chat"
	eventRepo "eventra/database/repository/event"
	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/services/notification"
)

// Broadcaster publishes new messages to live subscribers of a chat.
type Broadcaster interface {
	Broadcast(chatID string, payload any)
}

type ChatService interface {
	// AccessChat returns the direct chat with req.UserID or the chat of
	// req.EventID, creating it when missing.
	AccessChat(ctx context.Context, userID string, req models.AccessChatRequest) (*models.ChatView, error)
	FetchChats(ctx context.Context, userID string) ([]models.ChatView, error)
	SendMessage(ctx context.Context, userID string, req models.SendMessageRequest) (*models.ChatView, error)
	GetMessages(ctx context.Context, userID, chatID string) ([]models.MessageView, error)
	// EnsureParticipant fails unless userID takes part in the chat.
	EnsureParticipant(ctx context.Context, userID, chatID string) error
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Chats    chatRepo.ChatRepository
	Users    userRepo.UserRepository
	Events   eventRepo.EventRepository
	Bookings bookingRepo.BookingRepository
	Notifier notification.Notifier
	Hub      Broadcaster
}

func NewDefaultChatService(
	chats chatRepo.ChatRepository,
	users userRepo.UserRepository,
	events eventRepo.EventRepository,
	bookings bookingRepo.BookingRepository,
	notifier notification.Notifier,
	hub Broadcaster,
) *DefaultChatService {
	if notifier == nil {
		notifier = notification.LogNotifier{}
	}
	return &DefaultChatService{
		Chats:    chats,
		Users:    users,
		Events:   events,
		Bookings: bookings,
		Notifier: notifier,
		Hub:      hub,
	}
}
