package ai

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"eventra/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const tipCachePrefix = "ai:tip:"

// CachedAdvisor memoizes advisor tips in Redis.
type CachedAdvisor struct {
	next   Advisor
	client *redis.Client
	ttl    time.Duration
}

// NewCachedAdvisor wraps next. Without a Redis client it returns next unchanged.
func NewCachedAdvisor(next Advisor, client *redis.Client, ttl time.Duration) Advisor {
	if client == nil {
		return next
	}
	return &CachedAdvisor{next: next, client: client, ttl: ttl}
}

// tipKey buckets budgets to the nearest thousand so similar requests share a tip.
func tipKey(budget float64, services []string) string {
	sorted := append([]string{}, services...)
	for i := range sorted {
		sorted[i] = strings.ToLower(strings.TrimSpace(sorted[i]))
	}
	sort.Strings(sorted)
	sum := sha1.Sum([]byte(fmt.Sprintf("%d|%s", int64(budget/1000), strings.Join(sorted, ","))))
	return tipCachePrefix + hex.EncodeToString(sum[:])
}

func (c *CachedAdvisor) BudgetTip(ctx context.Context, budget float64, services []string) (string, error) {
	key := tipKey(budget, services)
	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		utils.GetLogger().Warn("tip cache read failed", zap.Error(err))
	}

	tip, err := c.next.BudgetTip(ctx, budget, services)
	if err != nil || tip == "" {
		return tip, err
	}
	if err := c.client.Set(ctx, key, tip, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("tip cache write failed", zap.Error(err))
	}
	return tip, nil
}
