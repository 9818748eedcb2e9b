package handlers

import (
	"errors"
	"net/http"
	"strings"

	"eventra/config"
	userRepo "eventra/database/repository/user"
	"eventra/middleware"
	"eventra/models"
	"eventra/realtime"
	"eventra/services/chat"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ChatHandler serves /api/chats and the realtime subscription.
type ChatHandler struct {
	Service   chat.ChatService
	Hub       *realtime.Hub
	Users     userRepo.UserRepository
	AuthCache *redis.Client
	upgrader  websocket.Upgrader
}

func NewChatHandler(svc chat.ChatService, hub *realtime.Hub, users userRepo.UserRepository, authCache *redis.Client) *ChatHandler {
	return &ChatHandler{
		Service:   svc,
		Hub:       hub,
		Users:     users,
		AuthCache: authCache,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// checkOrigin accepts non-browser clients and the configured CORS origins.
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range config.AllowedOrigins() {
		if strings.EqualFold(origin, allowed) {
			return true
		}
	}
	return false
}

// AccessChatHandler handles POST /api/chats.
func (h *ChatHandler) AccessChatHandler(c *gin.Context) {
	var req models.AccessChatRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	view, err := h.Service.AccessChat(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// FetchChatsHandler handles GET /api/chats.
func (h *ChatHandler) FetchChatsHandler(c *gin.Context) {
	chats, err := h.Service.FetchChats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

// SendMessageHandler handles POST /api/chats/message.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var req models.SendMessageRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	view, err := h.Service.SendMessage(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetMessagesHandler handles GET /api/chats/:id/messages.
func (h *ChatHandler) GetMessagesHandler(c *gin.Context) {
	messages, err := h.Service.GetMessages(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SubscribeHandler handles GET /api/chats/:id/ws. The token is read from
// ?token= or the Authorization header.
func (h *ChatHandler) SubscribeHandler(c *gin.Context) {
	logger := getLogger(c)
	chatID := c.Param("id")

	token := c.Query("token")
	if token == "" {
		token = strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	}
	claims, err := middleware.Authenticate(c.Request.Context(), token, h.Users, h.AuthCache)
	if err != nil {
		msg := "Not authorized, token failed"
		if errors.Is(err, middleware.ErrMissingToken) {
			msg = "Not authorized, no token"
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}
	if err := h.Service.EnsureParticipant(c.Request.Context(), claims.UserID, chatID); err != nil {
		utils.RespondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", zap.String("chatID", chatID), zap.Error(err))
		return
	}
	realtime.Serve(h.Hub, chatID, claims.UserID, conn)
	logger.Debug("Chat subscriber joined", zap.String("chatID", chatID), zap.String("userID", claims.UserID))
}
