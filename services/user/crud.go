package user

import (
	"context"
	"errors"
	"strings"

	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID returns the user or a not found error.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.NewNotFoundError("User not found")
	}
	return u, nil
}

// UpdateUser applies only the provided fields and returns a fresh token.
func (s *DefaultUserService) UpdateUser(ctx context.Context, userID string, req models.UserUpdateRequest) (*models.AuthResponse, error) {
	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if name := strings.TrimSpace(req.Name); name != "" {
		fields["name"] = name
		u.Name = name
	}
	if req.Email != "" {
		email := normalizeEmail(req.Email)
		if email != u.Email {
			other, err := s.Repos.Users.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != u.ID {
				return nil, utils.NewBadRequestError("Email already in use")
			}
			fields["email"] = email
			u.Email = email
		}
	}
	if req.Password != "" {
		hashed, err := hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		fields["passwordHash"] = hashed
	}
	if req.FCMToken != "" {
		fields["fcmToken"] = req.FCMToken
	}

	if len(fields) > 0 {
		if err := s.Repos.Users.UpdateSetDocument(ctx, userID, fields); err != nil {
			if errors.Is(err, userRepo.ErrDuplicateEmail) {
				return nil, utils.NewBadRequestError("Email already in use")
			}
			return nil, err
		}
		utils.GetLogger().Info("User profile updated", zap.String("userID", userID), zap.Int("fields", len(fields)))
	}
	return s.issueToken(ctx, u)
}
