package chat

import (
	"context"
	"strings"
	"time"

	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
)

const msgInvalidMessage = "Invalid data passed into request"

func (s *DefaultChatService) FetchChats(ctx context.Context, userID string) ([]models.ChatView, error) {
	chats, err := s.Chats.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]models.ChatView, 0, len(chats))
	for i := range chats {
		v, err := s.populate(ctx, &chats[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *DefaultChatService) participantChat(ctx context.Context, userID, chatID string) (*models.Chat, error) {
	chat, err := s.Chats.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, utils.NewNotFoundError("Chat not found")
	}
	if !chat.IsParticipant(userID) {
		return nil, utils.NewForbiddenError("Not a participant of this chat")
	}
	return chat, nil
}

func (s *DefaultChatService) EnsureParticipant(ctx context.Context, userID, chatID string) error {
	_, err := s.participantChat(ctx, userID, chatID)
	return err
}

// SendMessage appends a message, pushes it to live subscribers and queues
// notifications for the other participants.
func (s *DefaultChatService) SendMessage(ctx context.Context, userID string, req models.SendMessageRequest) (*models.ChatView, error) {
	content := strings.TrimSpace(req.Content)
	if req.ChatID == "" || content == "" {
		return nil, utils.NewBadRequestError(msgInvalidMessage)
	}
	if _, err := s.participantChat(ctx, userID, req.ChatID); err != nil {
		return nil, err
	}

	msg := models.Message{
		ID:        uuid.New().String(),
		Sender:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	updated, err := s.Chats.AppendMessage(ctx, req.ChatID, msg)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewNotFoundError("Chat not found")
	}

	view, err := s.populate(ctx, updated)
	if err != nil {
		return nil, err
	}

	var sender *models.UserSummary
	for _, p := range view.Participants {
		if p.ID == userID {
			sender = p
		}
	}
	if s.Hub != nil {
		s.Hub.Broadcast(updated.ID, models.MessageView{Message: msg, SenderInfo: sender})
	}

	title := "New message"
	if sender != nil {
		title = "New message from " + sender.Name
	}
	for _, p := range updated.Participants {
		if p == userID {
			continue
		}
		s.Notifier.Notify(ctx, models.PushNotification{
			UserID: p,
			Title:  title,
			Body:   preview(content),
			Data:   map[string]string{"chatId": updated.ID},
		})
	}
	return view, nil
}

func (s *DefaultChatService) GetMessages(ctx context.Context, userID, chatID string) ([]models.MessageView, error) {
	chat, err := s.participantChat(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	view, err := s.populate(ctx, chat)
	if err != nil {
		return nil, err
	}
	return view.Messages, nil
}

func preview(content string) string {
	const limit = 80
	r := []rune(content)
	if len(r) <= limit {
		return content
	}
	return string(r[:limit]) + "..."
}
