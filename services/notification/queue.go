package notification

import (
	"context"

	"eventra/models"
	"eventra/services/tasks"
	"eventra/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueNotifier enqueues notify:push tasks on asynq.
type QueueNotifier struct {
	client *asynq.Client
}

func NewQueueNotifier(client *asynq.Client) *QueueNotifier {
	return &QueueNotifier{client: client}
}

// Notify enqueues the push. Failures are logged and not returned.
func (q *QueueNotifier) Notify(ctx context.Context, n models.PushNotification) {
	task, opts, err := tasks.NewPushTask(n)
	if err != nil {
		utils.GetLogger().Error("failed to build push task", zap.String("userID", n.UserID), zap.Error(err))
		return
	}
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		utils.GetLogger().Warn("failed to enqueue push task", zap.String("userID", n.UserID), zap.Error(err))
		return
	}
	utils.GetLogger().Debug("push task enqueued", zap.String("taskID", info.ID), zap.String("userID", n.UserID))
}

// LogNotifier is used when no queue is available.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, n models.PushNotification) {
	utils.GetLogger().Info("push notification dropped, queue unavailable",
		zap.String("userID", n.UserID), zap.String("title", n.Title))
}
