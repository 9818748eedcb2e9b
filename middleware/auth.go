package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userRepo "eventra/database/repository/user"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

var (
	ErrMissingToken  = errors.New("missing or invalid Authorization header")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenMismatch = errors.New("token mismatch")
)

// Authenticate validates tokenString and checks that it is the user's active
// token, first against the auth cache and then against the user document.
// A nil cache means database-only checks.
func Authenticate(ctx context.Context, tokenString string, users userRepo.UserRepository, authCache *redis.Client) (*utils.TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	computedHash := utils.HashToken(tokenString)
	cacheKey := utils.AuthCacheKey(claims.UserID)

	if authCache != nil {
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		switch {
		case err == nil && cachedHash == computedHash:
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			return claims, nil
		case err == nil:
			return nil, ErrTokenMismatch
		case err != redis.Nil:
			utils.GetLogger().Warn("Auth cache lookup failed, falling back to DB", zap.Error(err))
		}
	}

	usr, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if usr == nil || usr.TokenHash == "" || usr.TokenHash != computedHash {
		return nil, ErrTokenMismatch
	}
	claims.Role = usr.Role

	if authCache != nil {
		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
	}
	return claims, nil
}

// JWTAuthMiddleware requires a Bearer token and stores the caller's id and
// role in the gin context.
func JWTAuthMiddleware(users userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := Authenticate(c.Request.Context(), tokenString, users, authCache)
		if err != nil {
			if !errors.Is(err, ErrMissingToken) && !errors.Is(err, ErrInvalidToken) && !errors.Is(err, ErrTokenMismatch) {
				utils.GetLogger().Error("Authentication error", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated caller's id.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// Role returns the authenticated caller's role.
func Role(c *gin.Context) string {
	return c.GetString(ContextRole)
}
