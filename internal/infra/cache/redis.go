package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domaininventory "innsync/internal/domain/inventory"
)

// LineCache keeps computed inventory lines in Redis as JSON. A miss and a
// hit are distinguished from errors so callers can degrade to a recompute.
type LineCache struct {
	rdb *redis.Client
}

func NewLineCache(ctx context.Context, addr string) (*LineCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &LineCache{rdb: client}, nil
}

func (c *LineCache) GetLines(ctx context.Context, key string) ([]domaininventory.Line, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var lines []domaininventory.Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, false, fmt.Errorf("cache: decode lines: %w", err)
	}
	return lines, true, nil
}

func (c *LineCache) SetLines(ctx context.Context, key string, lines []domaininventory.Line, ttl time.Duration) error {
	b, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("cache: encode lines: %w", err)
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func (c *LineCache) Close() error {
	return c.rdb.Close()
}
