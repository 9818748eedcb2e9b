package handlers

import (
	userRepo "eventra/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client

	Auth     *AuthHandler
	Events   *EventHandler
	Provider *ProviderHandler
	Booking  *BookingHandler
	Chat     *ChatHandler
	AI       *AIHandler
	Storage  *StorageHandler
}
