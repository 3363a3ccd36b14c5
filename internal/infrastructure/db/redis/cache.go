package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wattwise/energy-system/internal/core/ports"
)

const summaryTTL = 30 * time.Second

// SummaryCache keeps recently computed dashboard summaries in Redis so
// repeated dashboard loads do not recount appliances and consumption rows.
// Key format: dashboard:summary:<account_id>
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary for the account, if one is still fresh.
func (c *SummaryCache) Get(ctx context.Context, accountID int64) (*ports.Summary, bool, error) {
	raw, err := c.client.Get(ctx, c.key(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("summary cache get: %w", err)
	}

	var summary ports.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, fmt.Errorf("summary cache decode: %w", err)
	}
	return &summary, true, nil
}

// Set stores the summary for the account (expires after summaryTTL).
func (c *SummaryCache) Set(ctx context.Context, accountID int64, summary *ports.Summary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(accountID), raw, summaryTTL).Err()
}

func (c *SummaryCache) key(accountID int64) string {
	return fmt.Sprintf("dashboard:summary:%d", accountID)
}
