package cron

import (
	"context"
	"time"

	"eventra/config"
	"eventra/services/notification"
	"eventra/services/tasks"
	"eventra/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection for the push queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitPushWorker runs the push delivery worker in the background and returns
// the server so the caller can shut it down. The Redis monitor stops with ctx.
func InitPushWorker(ctx context.Context, notifSvc notification.NotificationService) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendPush, HandlePushTask(notifSvc))

	monitor := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	go monitorRedisConnection(ctx, monitor, 10*time.Second)

	go func() {
		logger.Info("Starting push worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Push worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Push worker giving up, notifications will stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandlePushTask delivers one notify:push task. Malformed payloads are not retried.
func HandlePushTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		p, err := tasks.ParsePushTask(task)
		if err != nil {
			logger.Warn("Dropping invalid push task", zap.Error(err))
			return asynq.SkipRetry
		}

		if err := notifSvc.SendUserPushNotification(ctx, p); err != nil {
			logger.Error("Failed to send push notification", zap.String("userID", p.UserID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the queue database every interval to surface
// outages. It closes client when ctx is done.
func monitorRedisConnection(ctx context.Context, client *redis.Client, interval time.Duration) {
	defer client.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil && ctx.Err() == nil {
				utils.GetLogger().Warn("Push queue Redis connection lost", zap.Error(err))
			}
		}
	}
}
