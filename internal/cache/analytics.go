// Package cache holds the Redis-backed analytics counters. Redis keeps the
// hot per-user progress and the daily active set; the full activity stream
// is archived in Mongo by the repository layer.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// AnalyticsCache handles Redis operations for usage analytics.
type AnalyticsCache interface {
	// Daily active users
	MarkActive(ctx context.Context, userEmail string, day time.Time) error
	ActiveCount(ctx context.Context, day time.Time) (int64, error)

	// Per-user progress counters
	IncrementProgress(ctx context.Context, userEmail, field string, delta int) error
	AddQuizScore(ctx context.Context, userEmail string, percentage float64) error
	GetProgress(ctx context.Context, userEmail string) (*model.UserProgress, error)

	// Service-wide request counters
	IncrementRequests(ctx context.Context, endpoint string) error
	RequestCounts(ctx context.Context) (map[string]int64, error)
}

// Progress hash fields.
const (
	FieldChats          = "chats"
	FieldTranslations   = "translations"
	FieldQuizzes        = "quizzes"
	FieldPronunciations = "pronunciations"
	fieldQuizScore      = "quiz_score_total"
)

type analyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates a new analytics cache.
func NewAnalyticsCache(client *redis.Client) AnalyticsCache {
	return &analyticsCache{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

// Key helpers
func (c *analyticsCache) activeKey(day time.Time) string {
	return fmt.Sprintf("active:%s", day.Format("2006-01-02"))
}

func (c *analyticsCache) progressKey(userEmail string) string {
	return fmt.Sprintf("user:%s:progress", userEmail)
}

func (c *analyticsCache) requestsKey() string {
	return "requests:endpoints"
}

func (c *analyticsCache) MarkActive(ctx context.Context, userEmail string, day time.Time) error {
	key := c.activeKey(day)
	pipe := c.client.Pipeline()
	pipe.SAdd(ctx, key, userEmail)
	pipe.Expire(ctx, key, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *analyticsCache) ActiveCount(ctx context.Context, day time.Time) (int64, error) {
	return c.client.SCard(ctx, c.activeKey(day)).Result()
}

func (c *analyticsCache) IncrementProgress(ctx context.Context, userEmail, field string, delta int) error {
	key := c.progressKey(userEmail)
	pipe := c.client.Pipeline()
	pipe.HIncrBy(ctx, key, field, int64(delta))
	pipe.Expire(ctx, key, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *analyticsCache) AddQuizScore(ctx context.Context, userEmail string, percentage float64) error {
	key := c.progressKey(userEmail)
	pipe := c.client.Pipeline()
	pipe.HIncrBy(ctx, key, FieldQuizzes, 1)
	pipe.HIncrByFloat(ctx, key, fieldQuizScore, percentage)
	pipe.Expire(ctx, key, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *analyticsCache) GetProgress(ctx context.Context, userEmail string) (*model.UserProgress, error) {
	fields, err := c.client.HGetAll(ctx, c.progressKey(userEmail)).Result()
	if err != nil {
		return nil, err
	}
	progress := &model.UserProgress{
		ChatCount:          intField(fields, FieldChats),
		TranslationCount:   intField(fields, FieldTranslations),
		QuizAttempts:       intField(fields, FieldQuizzes),
		PronunciationCount: intField(fields, FieldPronunciations),
	}
	if raw, ok := fields[fieldQuizScore]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			progress.QuizScoreTotal = v
		}
	}
	return progress, nil
}

func (c *analyticsCache) IncrementRequests(ctx context.Context, endpoint string) error {
	return c.client.HIncrBy(ctx, c.requestsKey(), endpoint, 1).Err()
}

func (c *analyticsCache) RequestCounts(ctx context.Context) (map[string]int64, error) {
	fields, err := c.client.HGetAll(ctx, c.requestsKey()).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(fields))
	for endpoint, raw := range fields {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			counts[endpoint] = v
		}
	}
	return counts, nil
}

func intField(fields map[string]string, name string) int {
	raw, ok := fields[name]
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
