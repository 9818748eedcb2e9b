package user

import (
	"context"

	bookingRepo "eventra/database/repository/booking"
	chatRepo "eventra/database/repository/chat"
	eventRepo "eventra/database/repository/event"
	providerRepo "eventra/database/repository/provider"
	userRepo "eventra/database/repository/user"
	"eventra/models"

	"github.com/go-redis/redis/v8"
)

type UserService interface {
	// Authentication
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, userID string) error

	// Account management
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, req models.UserUpdateRequest) (*models.AuthResponse, error)
	// DeleteAccount removes the user and everything that depends on it.
	DeleteAccount(ctx context.Context, userID string) error
}

// Repositories groups the collections touched by account deletion.
type Repositories struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Events    eventRepo.EventRepository
	Bookings  bookingRepo.BookingRepository
	Chats     chatRepo.ChatRepository
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repos     Repositories
	AuthCache *redis.Client
}

func NewDefaultUserService(repos Repositories, authCache *redis.Client) *DefaultUserService {
	return &DefaultUserService{Repos: repos, AuthCache: authCache}
}
