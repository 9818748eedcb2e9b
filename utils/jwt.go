package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"eventra/config"

	"github.com/golang-jwt/jwt"
)

// TokenClaims are the identity fields carried by an access token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// secretKey falls back to a development key; config.Validate refuses an empty
// JWT_SECRET in production.
func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "EVENTRA"
	}
	return []byte(secret)
}

// TokenTTL is the configured access token lifetime.
func TokenTTL() time.Duration {
	if config.AppConfig.TokenTTLHours <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
}

// GenerateToken creates a signed JWT token for the given user.
// The token expires after the specified duration.
func GenerateToken(userID, email, role string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ParseToken validates tokenString and extracts its claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{UserID: sub, Email: email, Role: role}, nil
}
