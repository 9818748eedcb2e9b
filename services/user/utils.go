package user

import (
	"context"
	"strings"

	"eventra/models"
	"eventra/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// issueToken signs a new token, stores its hash on the user and refreshes
// the auth cache. Any previously issued token stops working.
func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, utils.TokenTTL())
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repos.Users.UpdateSetDocument(ctx, u.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, err
	}
	s.cacheTokenHash(ctx, u.ID, tokenHash)

	return &models.AuthResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Token: token,
	}, nil
}

func (s *DefaultUserService) cacheTokenHash(ctx context.Context, userID, tokenHash string) {
	if s.AuthCache == nil {
		return
	}
	if err := s.AuthCache.Set(ctx, utils.AuthCacheKey(userID), tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache token hash", zap.String("userID", userID), zap.Error(err))
	}
}

func (s *DefaultUserService) clearAuthCache(ctx context.Context, userID string) {
	if s.AuthCache == nil {
		return
	}
	if err := s.AuthCache.Del(ctx, utils.AuthCacheKey(userID)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to clear auth cache", zap.String("userID", userID), zap.Error(err))
	}
}
