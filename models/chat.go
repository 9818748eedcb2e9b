package models

import "time"

// Message is one entry of a chat, appended in send order.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	Sender    string    `bson:"sender" json:"sender"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Chat is a thread between participants, optionally bound to an event.
type Chat struct {
	ID           string    `bson:"id" json:"id"`
	Participants []string  `bson:"participants" json:"participants"`
	Event        string    `bson:"event,omitempty" json:"event,omitempty"`
	Messages     []Message `bson:"messages" json:"messages"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsParticipant reports whether userID takes part in the chat.
func (c *Chat) IsParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// MessageView is a message with its sender populated.
type MessageView struct {
	Message    `bson:",inline"`
	SenderInfo *UserSummary `json:"senderInfo,omitempty"`
}

// ChatView is the populated form returned by the chat endpoints.
type ChatView struct {
	ID           string         `json:"id"`
	Participants []*UserSummary `json:"participants"`
	Event        string         `json:"event,omitempty"`
	Messages     []MessageView  `json:"messages"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// AccessChatRequest is the payload for POST /api/chats.
type AccessChatRequest struct {
	UserID  string `json:"userId"`
	EventID string `json:"eventId"`
}

// SendMessageRequest is the payload for POST /api/chats/message.
type SendMessageRequest struct {
	ChatID  string `json:"chatId"`
	Content string `json:"content"`
}
