package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventra/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	Logger = zap.NewNop()
}

func TestGenerateAndParseToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "ana@example.com", "organizer", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "organizer", claims.Role)
}

func TestParseTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	expired, err := GenerateToken("user-1", "ana@example.com", "organizer", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired)
	assert.Error(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	foreign, err := GenerateToken("user-1", "ana@example.com", "organizer", time.Hour)
	require.NoError(t, err)
	config.AppConfig.JWTSecret = "test-secret"
	_, err = ParseToken(foreign)
	assert.Error(t, err)

	_, err = ParseToken("not-a-jwt")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}

func TestTokenTTL(t *testing.T) {
	config.AppConfig.TokenTTLHours = 0
	assert.Equal(t, 30*24*time.Hour, TokenTTL())
	config.AppConfig.TokenTTLHours = 2
	assert.Equal(t, 2*time.Hour, TokenTTL())
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", NewNotFoundError("Event not found"), http.StatusNotFound, `{"code":"notFound","error":"Event not found"}`},
		{"wrapped forbidden", fmt.Errorf("ctx: %w", NewForbiddenError("nope")), http.StatusForbidden, `{"code":"forbidden","error":"nope"}`},
		{"internal", errors.New("mongo exploded"), http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			RespondError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.Equal(t, tt.status, StatusOf(tt.err))
		})
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestCheckHealthWithoutClients(t *testing.T) {
	status := CheckHealth(t.Context(), nil, nil)
	assert.False(t, status.Mongo)
	assert.Empty(t, status.Redis)
	assert.Equal(t, status, GetHealthStatus())
}
