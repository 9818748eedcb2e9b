package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid email or password"
)

func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if !models.ValidRole(req.Role) {
		return nil, utils.NewBadRequestError("role must be organizer or provider")
	}
	email := normalizeEmail(req.Email)

	existing, err := s.Repos.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, utils.NewBadRequestError(msgUserExists)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashed,
		Role:         req.Role,
	}
	if err := s.Repos.Users.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, utils.NewBadRequestError(msgUserExists)
		}
		return nil, err
	}

	logger.Info("User registered", zap.String("userID", u.ID), zap.String("role", u.Role))
	return s.issueToken(ctx, u)
}

func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	u, err := s.Repos.Users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return nil, utils.NewUnauthorizedError(msgInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.NewUnauthorizedError(msgInvalidCredentials)
	}

	utils.GetLogger().Info("User logged in", zap.String("userID", u.ID))
	return s.issueToken(ctx, u)
}

func (s *DefaultUserService) Logout(ctx context.Context, userID string) error {
	if err := s.Repos.Users.UpdateSetDocument(ctx, userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.clearAuthCache(ctx, userID)
	return nil
}
