package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is one WebSocket subscriber of a chat room.
type Client struct {
	conn   *websocket.Conn
	hub    *Hub
	chatID string
	userID string

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

// Serve registers conn in the chat room and starts its pumps.
func Serve(h *Hub, chatID, userID string, conn *websocket.Conn) *Client {
	c := &Client{conn: conn, hub: h, chatID: chatID, userID: userID, send: make(chan []byte, sendBuffer)}
	h.Join(chatID, c)
	go c.writePump()
	go c.readPump()
	return c
}

// enqueue hands msg to the write pump without blocking.
func (c *Client) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// readPump only consumes control frames; subscribers post messages over HTTP.
func (c *Client) readPump() {
	defer c.Close()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close leaves the room and stops the write pump. Safe to call repeatedly.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()

	c.hub.Leave(c.chatID, c)
}
