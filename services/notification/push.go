package notification

import (
	"context"
	"fmt"

	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// MessagingClient is the part of the FCM client used for delivery.
type MessagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// DefaultNotificationService sends pushes through FCM.
type DefaultNotificationService struct {
	users userRepo.UserRepository
	fcm   MessagingClient
}

// NewDefaultNotificationService builds the delivery service. fcm may be nil,
// in which case notifications are only logged.
func NewDefaultNotificationService(users userRepo.UserRepository, fcm MessagingClient) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{users: users, fcm: fcm}, nil
}

// SendUserPushNotification looks up the recipient's FCM token and sends the push.
// Recipients without a token are skipped.
func (s *DefaultNotificationService) SendUserPushNotification(ctx context.Context, n models.PushNotification) error {
	logger := utils.GetLogger()

	u, err := s.users.GetByID(ctx, n.UserID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not load user %s: %w", n.UserID, err)
	}
	if u == nil {
		logger.Info("push recipient no longer exists", zap.String("userID", n.UserID))
		return nil
	}
	if u.FCMToken == "" || s.fcm == nil {
		logger.Info("push not delivered",
			zap.String("userID", n.UserID),
			zap.String("title", n.Title),
			zap.Bool("hasToken", u.FCMToken != ""))
		return nil
	}

	data := map[string]string{"role": u.Role}
	for k, v := range n.Data {
		data[k] = v
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	response, err := s.fcm.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
	}
	logger.Debug("push delivered", zap.String("userID", n.UserID), zap.String("messageID", response))
	return nil
}
