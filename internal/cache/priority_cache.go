package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"taskdo/internal/model"
)

const priorityListKey = "priority:list"

// PriorityCache keeps the priority lookup table in Redis. The table is tiny
// and read on every task-authoring screen, so a short TTL plus invalidation
// on writes is enough.
type PriorityCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewPriorityCache(client *redisv9.Client, ttl time.Duration) *PriorityCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PriorityCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *PriorityCache) GetList(ctx context.Context) ([]model.Priority, bool, error) {
	raw, err := c.client.Get(ctx, priorityListKey).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get priority list failed: %w", err)
	}

	var priorities []model.Priority
	if err := json.Unmarshal([]byte(raw), &priorities); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached priority list failed: %w", err)
	}
	return priorities, true, nil
}

func (c *PriorityCache) SetList(ctx context.Context, priorities []model.Priority) error {
	payload, err := json.Marshal(priorities)
	if err != nil {
		return fmt.Errorf("marshal priority list failed: %w", err)
	}
	if err := c.client.Set(ctx, priorityListKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set priority list failed: %w", err)
	}
	return nil
}

func (c *PriorityCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, priorityListKey).Err(); err != nil {
		return fmt.Errorf("redis delete priority list failed: %w", err)
	}
	return nil
}
