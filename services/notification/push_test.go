package notification

import (
	"context"
	"errors"
	"testing"

	"eventra/database/repository/memstore"
	"eventra/models"
	"eventra/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

type fakeMessaging struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessaging) Send(_ context.Context, m *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, m)
	return "projects/eventra/messages/1", nil
}

func TestSendUserPushNotification(t *testing.T) {
	store := memstore.New()
	store.Users["p1"] = &models.User{ID: "p1", Role: models.RoleProvider, FCMToken: "device-token"}
	store.Users["o1"] = &models.User{ID: "o1", Role: models.RoleOrganizer}

	fcm := &fakeMessaging{}
	svc, err := NewDefaultNotificationService(store.UserRepo(), fcm)
	require.NoError(t, err)
	ctx := context.Background()

	err = svc.SendUserPushNotification(ctx, models.PushNotification{
		UserID: "p1",
		Title:  "New booking request",
		Body:   "Catering for Launch Party",
		Data:   map[string]string{"bookingId": "b1"},
	})
	require.NoError(t, err)
	require.Len(t, fcm.sent, 1)
	msg := fcm.sent[0]
	assert.Equal(t, "device-token", msg.Token)
	assert.Equal(t, "New booking request", msg.Notification.Title)
	assert.Equal(t, map[string]string{"role": "provider", "bookingId": "b1"}, msg.Data)
	assert.Equal(t, "high", msg.Android.Priority)

	// No token and unknown recipients are skipped without error.
	require.NoError(t, svc.SendUserPushNotification(ctx, models.PushNotification{UserID: "o1", Title: "x"}))
	require.NoError(t, svc.SendUserPushNotification(ctx, models.PushNotification{UserID: "gone", Title: "x"}))
	assert.Len(t, fcm.sent, 1)

	fcm.err = errors.New("unavailable")
	assert.Error(t, svc.SendUserPushNotification(ctx, models.PushNotification{UserID: "p1", Title: "x"}))
}

func TestNewDefaultNotificationServiceRequiresUsers(t *testing.T) {
	_, err := NewDefaultNotificationService(nil, nil)
	assert.Error(t, err)
}
