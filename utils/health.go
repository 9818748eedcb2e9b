package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings every dependency once and stores the snapshot.
func CheckHealth(ctx context.Context, redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	redisHealth := make([]bool, 0, len(redisClients))
	for _, client := range redisClients {
		redisHealth = append(redisHealth, client != nil && client.Ping(pingCtx).Err() == nil)
	}
	mongoHealthy := mongoClient != nil && mongoClient.Ping(pingCtx, nil) == nil

	status := HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		CheckHealth(ctx, redisClients, mongoClient)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, redisClients, mongoClient)
			}
		}
	}()
}
