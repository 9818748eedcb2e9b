package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventra/database/repository/memstore"
	"eventra/models"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

func issue(t *testing.T, store *memstore.Store, id, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(id, id+"@example.com", role, time.Hour)
	require.NoError(t, err)
	store.Users[id] = &models.User{ID: id, Email: id + "@example.com", Role: role, TokenHash: utils.HashToken(token)}
	return token
}

func protectedRouter(store *memstore.Store, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuthMiddleware(store.UserRepo(), nil)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": UserID(c), "role": Role(c)})
	})
	r.GET("/private", chain...)
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	store := memstore.New()
	token := issue(t, store, "u1", models.RoleOrganizer)
	r := protectedRouter(store)

	w := get(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"u1","role":"organizer"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "not-a-jwt").Code)

	// Logging in elsewhere replaces the stored hash and revokes the old token.
	store.Users["u1"].TokenHash = utils.HashToken("another-session")
	assert.Equal(t, http.StatusUnauthorized, get(r, token).Code)

	expired, err := utils.GenerateToken("u2", "u2@example.com", models.RoleProvider, -time.Minute)
	require.NoError(t, err)
	store.Users["u2"] = &models.User{ID: "u2", Role: models.RoleProvider, TokenHash: utils.HashToken(expired)}
	assert.Equal(t, http.StatusUnauthorized, get(r, expired).Code)

	ghost, err := utils.GenerateToken("ghost", "g@example.com", models.RoleProvider, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, ghost).Code)
}

func TestRequireRole(t *testing.T) {
	store := memstore.New()
	organizer := issue(t, store, "org", models.RoleOrganizer)
	provider := issue(t, store, "pro", models.RoleProvider)
	r := protectedRouter(store, RequireRole(models.RoleProvider))

	assert.Equal(t, http.StatusOK, get(r, provider).Code)
	assert.Equal(t, http.StatusForbidden, get(r, organizer).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(3))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, call("1.1.1.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, call("1.1.1.1"))
	assert.Equal(t, http.StatusOK, call("2.2.2.2"))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "9.9.9.9, 10.0.0.1"}, "1.2.3.4:5678", "9.9.9.9"},
		{"real ip", map[string]string{"X-Real-IP": " 8.8.8.8 "}, "1.2.3.4:5678", "8.8.8.8"},
		{"remote addr", nil, "1.2.3.4:5678", "1.2.3.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(c))
		})
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
