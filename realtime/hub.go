// Package realtime fans chat messages out to WebSocket subscribers, one room per chat.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"eventra/utils"

	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 * 1024
	sendBuffer     = 256
)

// Hub tracks the connected clients of every chat room.
type Hub struct {
	rooms map[string]map[*Client]bool
	mu    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

func (h *Hub) Join(chatID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[chatID] == nil {
		h.rooms[chatID] = make(map[*Client]bool)
	}
	h.rooms[chatID][c] = true
}

func (h *Hub) Leave(chatID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.rooms[chatID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.rooms, chatID)
		}
	}
}

// RoomSize returns the number of clients subscribed to chatID.
func (h *Hub) RoomSize(chatID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[chatID])
}

// Broadcast sends payload to every client in the room. Clients whose send
// buffer is full are disconnected.
func (h *Hub) Broadcast(chatID string, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		utils.GetLogger().Error("failed to encode broadcast", zap.String("chatID", chatID), zap.Error(err))
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[chatID]))
	for c := range h.rooms[chatID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.enqueue(b) {
			go c.Close()
		}
	}
}
