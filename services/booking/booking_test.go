package booking

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"eventra/database/repository/memstore"
	"eventra/models"
	"eventra/services/payment"
	"eventra/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.PushNotification
}

func (r *recordingNotifier) Notify(_ context.Context, n models.PushNotification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) last() models.PushNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sent[len(r.sent)-1]
}

type fakeGateway struct {
	req payment.IntentRequest
}

func (f *fakeGateway) CreateIntent(_ context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	f.req = req
	return &payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: req.Amount, Currency: req.Currency}, nil
}

type fixture struct {
	store    *memstore.Store
	svc      *DefaultBookingService
	notifier *recordingNotifier
}

func newFixture(t *testing.T, gw payment.Gateway) *fixture {
	t.Helper()
	store := memstore.New()
	store.Users["org"] = &models.User{ID: "org", Name: "Olga", Email: "olga@example.com", Role: models.RoleOrganizer}
	store.Users["org2"] = &models.User{ID: "org2", Name: "Omar", Email: "omar@example.com", Role: models.RoleOrganizer}
	store.Users["pro"] = &models.User{ID: "pro", Name: "Lens Co", Email: "lens@example.com", Role: models.RoleProvider, PasswordHash: "h"}
	store.Events["e1"] = &models.Event{ID: "e1", Organizer: "org", Title: "Wedding", Date: time.Now(), Budget: 5000}

	n := &recordingNotifier{}
	svc := NewDefaultBookingService(store.BookingRepo(), store.EventRepo(), store.UserRepo(), n, gw, "")
	return &fixture{store: store, svc: svc, notifier: n}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{EventID: "e1", ProviderID: "pro", ServiceName: "Photography", Date: "2025-06-14", Price: 750.5}
}

func (f *fixture) book(t *testing.T) *models.Booking {
	t.Helper()
	b, err := f.svc.CreateBooking(context.Background(), "org", validRequest())
	require.NoError(t, err)
	return b
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t, nil)
	b := f.book(t)

	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, 750.5, b.Price)
	assert.Equal(t, "pro", f.notifier.last().UserID)
	assert.Equal(t, "usd", f.svc.Currency)

	tests := []struct {
		name   string
		caller string
		mutate func(r *models.BookingRequest)
		status int
	}{
		{"unknown event", "org", func(r *models.BookingRequest) { r.EventID = "nope" }, http.StatusNotFound},
		{"unknown provider", "org", func(r *models.BookingRequest) { r.ProviderID = "nope" }, http.StatusNotFound},
		{"not event owner", "org2", func(r *models.BookingRequest) {}, http.StatusForbidden},
		{"target is organizer", "org", func(r *models.BookingRequest) { r.ProviderID = "org2" }, http.StatusBadRequest},
		{"zero price", "org", func(r *models.BookingRequest) { r.Price = 0 }, http.StatusBadRequest},
		{"bad date", "org", func(r *models.BookingRequest) { r.Date = "soon" }, http.StatusBadRequest},
		{"blank service", "org", func(r *models.BookingRequest) { r.ServiceName = " " }, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := f.svc.CreateBooking(context.Background(), tt.caller, req)
			require.Error(t, err)
			assert.Equal(t, tt.status, utils.StatusOf(err))
		})
	}
}

func TestListAndGetBookings(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	b := f.book(t)

	forProvider, err := f.svc.ListBookings(ctx, "pro", models.RoleProvider)
	require.NoError(t, err)
	require.Len(t, forProvider, 1)
	require.NotNil(t, forProvider[0].EventInfo)
	assert.Equal(t, "Wedding", forProvider[0].EventInfo.Title)
	assert.Nil(t, forProvider[0].ProviderInfo)

	forOrganizer, err := f.svc.ListBookings(ctx, "org", models.RoleOrganizer)
	require.NoError(t, err)
	require.Len(t, forOrganizer, 1)
	assert.Equal(t, "Lens Co", forOrganizer[0].ProviderInfo.Name)

	empty, err := f.svc.ListBookings(ctx, "org2", models.RoleOrganizer)
	require.NoError(t, err)
	assert.Empty(t, empty)

	view, err := f.svc.GetBooking(ctx, "org", b.ID)
	require.NoError(t, err)
	assert.Equal(t, "lens@example.com", view.ProviderInfo.Email)

	_, err = f.svc.GetBooking(ctx, "org2", b.ID)
	assert.Equal(t, http.StatusForbidden, utils.StatusOf(err))
	_, err = f.svc.GetBooking(ctx, "org", "missing")
	assert.Equal(t, "Booking not found", err.Error())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		who      party
		want     bool
	}{
		{models.BookingPending, models.BookingConfirmed, partyProvider, true},
		{models.BookingPending, models.BookingConfirmed, partyOrganizer, false},
		{models.BookingPending, models.BookingCancelled, partyOrganizer, true},
		{models.BookingPending, models.BookingCancelled, partyProvider, true},
		{models.BookingPending, models.BookingCompleted, partyProvider, false},
		{models.BookingConfirmed, models.BookingCompleted, partyProvider, true},
		{models.BookingConfirmed, models.BookingCompleted, partyOrganizer, false},
		{models.BookingConfirmed, models.BookingCancelled, partyOrganizer, true},
		{models.BookingConfirmed, models.BookingPending, partyProvider, false},
		{models.BookingCompleted, models.BookingCancelled, partyProvider, false},
		{models.BookingCancelled, models.BookingPending, partyOrganizer, false},
		{models.BookingPending, models.BookingPending, partyProvider, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canTransition(tt.from, tt.to, tt.who), "%s -> %s by %d", tt.from, tt.to, tt.who)
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	b := f.book(t)

	_, err := f.svc.UpdateStatus(ctx, "pro", b.ID, "accepted")
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))

	_, err = f.svc.UpdateStatus(ctx, "org2", b.ID, models.BookingCancelled)
	assert.Equal(t, http.StatusForbidden, utils.StatusOf(err))

	_, err = f.svc.UpdateStatus(ctx, "org", b.ID, models.BookingConfirmed)
	assert.Equal(t, http.StatusUnprocessableEntity, utils.StatusOf(err))

	_, err = f.svc.UpdateStatus(ctx, "pro", b.ID, models.BookingPending)
	require.Error(t, err)
	assert.Equal(t, "booking is already pending", err.Error())

	confirmed, err := f.svc.UpdateStatus(ctx, "pro", b.ID, models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	assert.Equal(t, "org", f.notifier.last().UserID)

	completed, err := f.svc.UpdateStatus(ctx, "pro", b.ID, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)

	_, err = f.svc.UpdateStatus(ctx, "org", b.ID, models.BookingCancelled)
	assert.Equal(t, http.StatusUnprocessableEntity, utils.StatusOf(err))

	other := f.book(t)
	_, err = f.svc.UpdateStatus(ctx, "org", other.ID, models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, "pro", f.notifier.last().UserID)
}

func TestCreatePaymentIntent(t *testing.T) {
	unconfigured := newFixture(t, nil)
	b := unconfigured.book(t)
	_, err := unconfigured.svc.CreatePaymentIntent(context.Background(), "org", b.ID)
	assert.Equal(t, http.StatusServiceUnavailable, utils.StatusOf(err))

	gw := &fakeGateway{}
	f := newFixture(t, gw)
	ctx := context.Background()
	b = f.book(t)

	_, err = f.svc.CreatePaymentIntent(ctx, "org", b.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, utils.StatusOf(err))

	_, err = f.svc.UpdateStatus(ctx, "pro", b.ID, models.BookingConfirmed)
	require.NoError(t, err)

	_, err = f.svc.CreatePaymentIntent(ctx, "pro", b.ID)
	assert.Equal(t, http.StatusForbidden, utils.StatusOf(err))

	intent, err := f.svc.CreatePaymentIntent(ctx, "org", b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(75050), intent.Amount)
	assert.Equal(t, "usd", intent.Currency)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	assert.Equal(t, b.ID, gw.req.Metadata["bookingId"])
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), minorUnits(19.99))
	assert.Equal(t, int64(10), minorUnits(0.1))
	assert.Equal(t, int64(500000), minorUnits(5000))
}
