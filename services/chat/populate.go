package chat

import (
	"context"

	"eventra/models"
)

// populate resolves participants and message senders to public user summaries.
func (s *DefaultChatService) populate(ctx context.Context, chat *models.Chat) (*models.ChatView, error) {
	ids := append([]string{}, chat.Participants...)
	for _, m := range chat.Messages {
		ids = append(ids, m.Sender)
	}
	users, err := s.Users.GetByIDs(ctx, unique(ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.UserSummary, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].Summary()
	}

	view := &models.ChatView{
		ID:           chat.ID,
		Participants: make([]*models.UserSummary, 0, len(chat.Participants)),
		Event:        chat.Event,
		Messages:     make([]models.MessageView, 0, len(chat.Messages)),
		CreatedAt:    chat.CreatedAt,
		UpdatedAt:    chat.UpdatedAt,
	}
	for _, p := range chat.Participants {
		if u, ok := byID[p]; ok {
			view.Participants = append(view.Participants, u)
		}
	}
	for _, m := range chat.Messages {
		mv := models.MessageView{Message: m}
		if u, ok := byID[m.Sender]; ok {
			mv.SenderInfo = &models.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
		}
		view.Messages = append(view.Messages, mv)
	}
	return view, nil
}

func unique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
