package chat

import (
	"context"

	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const msgMissingTarget = "UserId or EventId param not sent with request"

func (s *DefaultChatService) AccessChat(ctx context.Context, userID string, req models.AccessChatRequest) (*models.ChatView, error) {
	var (
		chat *models.Chat
		err  error
	)
	switch {
	case req.EventID != "":
		chat, err = s.accessEventChat(ctx, userID, req.EventID)
	case req.UserID != "":
		chat, err = s.accessDirectChat(ctx, userID, req.UserID)
	default:
		return nil, utils.NewBadRequestError(msgMissingTarget)
	}
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, chat)
}

// accessEventChat admits the event organizer and providers holding a
// booking on the event that is not cancelled.
func (s *DefaultChatService) accessEventChat(ctx context.Context, userID, eventID string) (*models.Chat, error) {
	ev, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, utils.NewNotFoundError("Event not found")
	}
	if ev.Organizer != userID {
		booked, err := s.Bookings.ExistsForProviderOnEvent(ctx, userID, eventID)
		if err != nil {
			return nil, err
		}
		if !booked {
			return nil, utils.NewForbiddenError("Not authorized to join this event chat")
		}
	}

	existing, err := s.Chats.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsParticipant(userID) {
			return existing, nil
		}
		joined, err := s.Chats.AddParticipant(ctx, existing.ID, userID)
		if err != nil {
			return nil, err
		}
		if joined == nil {
			return nil, utils.NewNotFoundError("Chat not found")
		}
		return joined, nil
	}

	participants := []string{ev.Organizer}
	if userID != ev.Organizer {
		participants = append(participants, userID)
	}
	chat := &models.Chat{ID: uuid.New().String(), Participants: participants, Event: eventID}
	if err := s.Chats.Create(ctx, chat); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Event chat created", zap.String("chatID", chat.ID), zap.String("eventID", eventID))
	return chat, nil
}

func (s *DefaultChatService) accessDirectChat(ctx context.Context, userID, otherID string) (*models.Chat, error) {
	if otherID == userID {
		return nil, utils.NewBadRequestError("Cannot start a chat with yourself")
	}
	other, err := s.Users.GetByID(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, utils.NewNotFoundError("User not found")
	}

	existing, err := s.Chats.FindDirect(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	chat := &models.Chat{ID: uuid.New().String(), Participants: []string{userID, otherID}}
	if err := s.Chats.Create(ctx, chat); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Direct chat created", zap.String("chatID", chat.ID))
	return chat, nil
}
