package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// EngagementState is the cached per-user engagement snapshot. It is advisory
// only; the database remains authoritative.
type EngagementState struct {
	BookmarkedIDs []string `json:"bookmarkedIds"`
	AppliedIDs    []string `json:"appliedIds"`
}

// EngagementCache caches per-user bookmark/application state in Redis, keyed
// by user id so that one user's state can never leak into another session.
type EngagementCache struct {
	ttl time.Duration
}

var (
	setCacheValue = Set
	getCacheValue = Get
	delCacheValue = Del
)

// NewEngagementCache creates an engagement cache with the given entry TTL
func NewEngagementCache(ttl time.Duration) *EngagementCache {
	return &EngagementCache{ttl: ttl}
}

func engagementKey(userID string) string {
	return "engagement:" + userID
}

// Get returns the cached state for a user, or (nil, nil) on a cache miss
func (c *EngagementCache) Get(ctx context.Context, userID string) (*EngagementState, error) {
	raw, err := getCacheValue(ctx, engagementKey(userID))
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var state EngagementState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Put stores the state for a user
func (c *EngagementCache) Put(ctx context.Context, userID string, state *EngagementState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return setCacheValue(ctx, engagementKey(userID), string(raw), c.ttl)
}

// Invalidate drops the cached state for a user. Called after every engagement
// write and on identity change (login/logout).
func (c *EngagementCache) Invalidate(ctx context.Context, userID string) error {
	return delCacheValue(ctx, engagementKey(userID))
}
