package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventra/database/repository/memstore"
	"eventra/handlers"
	"eventra/realtime"
	"eventra/services/ai"
	"eventra/services/booking"
	"eventra/services/chat"
	"eventra/services/event"
	"eventra/services/provider"
	"eventra/services/user"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
	if err := utils.RegisterValidators(); err != nil {
		panic(err)
	}
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	store  *memstore.Store
}

func newTestAPI(t *testing.T) *testAPI {
	store := memstore.New()
	hub := realtime.NewHub()

	userSvc := user.NewDefaultUserService(user.Repositories{
		Users:     store.UserRepo(),
		Providers: store.ProviderRepo(),
		Events:    store.EventRepo(),
		Bookings:  store.BookingRepo(),
		Chats:     store.ChatRepo(),
	}, nil)
	providerSvc, err := provider.NewDefaultProviderService(store.ProviderRepo(), store.UserRepo(), nil)
	require.NoError(t, err)
	eventSvc := event.NewDefaultEventService(store.EventRepo(), store.BookingRepo(), store.ChatRepo())
	bookingSvc := booking.NewDefaultBookingService(store.BookingRepo(), store.EventRepo(), store.UserRepo(), nil, nil, "")
	chatSvc := chat.NewDefaultChatService(store.ChatRepo(), store.UserRepo(), store.EventRepo(), store.BookingRepo(), nil, hub)

	hb := &handlers.HandlerBundle{
		UserRepo: store.UserRepo(),
		Auth:     handlers.NewAuthHandler(userSvc),
		Events:   handlers.NewEventHandler(eventSvc),
		Provider: handlers.NewProviderHandler(providerSvc),
		Booking:  handlers.NewBookingHandler(bookingSvc),
		Chat:     handlers.NewChatHandler(chatSvc, hub, store.UserRepo(), nil),
		AI:       handlers.NewAIHandler(ai.NewLocalPlannerService(store.ProviderRepo(), nil)),
		Storage:  handlers.NewStorageHandler(nil),
	}
	r := gin.New()
	RegisterRoutes(r, hb)
	return &testAPI{t: t, router: r, store: store}
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *testAPI) register(name, email, role string) (id, token string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret1", "role": role,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[map[string]any](a.t, w)
	return resp["id"].(string), resp["token"].(string)
}

func TestBannerAndHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "EVENTRA API is running", w.Body.String())

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/health", "", nil).Code)
}

func TestAuthRoutes(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.register("Olivia", "olivia@example.com", "organizer")

	w := api.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Other", "email": "OLIVIA@example.com", "password": "secret1", "role": "organizer",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode[map[string]any](t, w)["error"])

	w = api.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Bad", "email": "bad@example.com", "password": "secret1", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "olivia@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode[map[string]any](t, w)["error"])

	w = api.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[map[string]any](t, w)
	assert.Equal(t, "Olivia", me["name"])
	assert.NotContains(t, me, "passwordHash")

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/auth/me", "", nil).Code)

	w = api.do(http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/auth/me", token, nil).Code)
}

func TestMarketplaceFlow(t *testing.T) {
	api := newTestAPI(t)
	organizerID, organizer := api.register("Olivia", "olivia@example.com", "organizer")
	providerID, prov := api.register("Pat", "pat@example.com", "provider")

	// Provider profile.
	profile := gin.H{"category": "Catering", "location": "Nairobi", "bio": "Weddings and launches"}
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/providers/profile", organizer, profile).Code)
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/providers/profile", prov, profile).Code)

	w := api.do(http.MethodGet, "/api/providers?category=catering", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]map[string]any](t, w)
	require.Len(t, listed, 1)
	assert.Equal(t, "Pat", listed[0]["user"].(map[string]any)["name"])
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/providers?minRating=abc", "", nil).Code)

	// Event.
	eventBody := gin.H{"title": "Launch Party", "type": "Corporate", "date": "2026-12-01", "location": "Nairobi", "guestCount": 80, "budget": 3000}
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/events", prov, eventBody).Code)
	w = api.do(http.MethodPost, "/api/events", organizer, eventBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	eventID := decode[map[string]any](t, w)["id"].(string)

	// Booking.
	bookingBody := gin.H{"eventId": eventID, "providerId": providerID, "serviceName": "Catering", "date": "2026-12-01", "price": 1200.5}
	w = api.do(http.MethodPost, "/api/bookings", organizer, bookingBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, "pending", created["status"])
	bookingID := created["id"].(string)

	w = api.do(http.MethodGet, "/api/bookings", prov, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	statusPath := "/api/bookings/" + bookingID + "/status"
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPut, statusPath, prov, gin.H{"status": "archived"}).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, api.do(http.MethodPut, statusPath, organizer, gin.H{"status": "confirmed"}).Code)
	w = api.do(http.MethodPut, statusPath, prov, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "confirmed", decode[map[string]any](t, w)["status"])

	w = api.do(http.MethodGet, "/api/events/"+eventID+"/budget", organizer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[map[string]any](t, w)
	assert.InDelta(t, 1200.5, summary["committed"], 0.001)
	assert.InDelta(t, 1799.5, summary["remaining"], 0.001)

	// Payments are not configured in tests.
	assert.Equal(t, http.StatusServiceUnavailable, api.do(http.MethodPost, "/api/bookings/"+bookingID+"/payment-intent", organizer, nil).Code)

	// Event chat.
	w = api.do(http.MethodPost, "/api/chats", prov, gin.H{"eventId": eventID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	chatID := decode[map[string]any](t, w)["id"].(string)

	_, stranger := api.register("Sam", "sam@example.com", "provider")
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/chats", stranger, gin.H{"eventId": eventID}).Code)
	w = api.do(http.MethodPost, "/api/chats/message", stranger, gin.H{"chatId": chatID, "content": "Hello?"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodPost, "/api/chats/message", organizer, gin.H{"chatId": chatID, "content": "Menu ready?"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/chats/"+chatID+"/messages", prov, nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages := decode[[]map[string]any](t, w)
	require.Len(t, messages, 1)
	assert.Equal(t, organizerID, messages[0]["sender"])

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/chats", prov, gin.H{}).Code)

	// Deleting the organizer removes the event and everything hanging off it.
	w = api.do(http.MethodDelete, "/api/auth/profile", organizer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	counts := api.store.Counts()
	assert.Equal(t, 0, counts["events"])
	assert.Equal(t, 0, counts["bookings"])
	assert.Equal(t, 0, counts["chats"])
	assert.Equal(t, 2, counts["users"])
	assert.Equal(t, 1, counts["profiles"])
}

func TestAIRoutesArePublic(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/ai/suggest-services", "", gin.H{"eventType": "Birthday", "guestCount": 150})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		[]any{"Photography", "Catering", "Cake", "Decoration", "Security", "Vehicle Rental"},
		decode[map[string]any](t, w)["services"])

	w = api.do(http.MethodPost, "/api/ai/optimize-budget", "", gin.H{"budget": 1000})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Budget is tight. Consider DIY decorations."}, decode[map[string]any](t, w)["feedback"])

	w = api.do(http.MethodPost, "/api/ai/timeline", "", gin.H{"date": "2026-12-01"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string]any](t, w)["timeline"], 4)

	w = api.do(http.MethodPost, "/api/ai/match-providers", "", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]map[string]any](t, w))
}

func TestUploadWithoutStorage(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.register("Pat", "pat@example.com", "provider")

	w := api.do(http.MethodPost, "/api/upload", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestChatRoutesWithEmptyBody(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.register("Olivia", "olivia@example.com", "organizer")

	w := api.do(http.MethodPost, "/api/chats", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UserId or EventId param not sent with request", decode[map[string]any](t, w)["error"])

	w = api.do(http.MethodPost, "/api/chats/message", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid data passed into request", decode[map[string]any](t, w)["error"])

	w = api.do(http.MethodPost, "/api/chats", token, "not-an-object")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]any](t, w)["error"], "Invalid request")
}
