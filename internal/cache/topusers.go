package cache

import (
	"context"
	"encoding/json"
	"time"

	"chirp-go/internal/model"
	"chirp-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const topUsersKey = "rank:top_users"

// RankedEntry 榜单缓存条目（与登录者无关的部分，is_followed 由请求时补上）
type RankedEntry struct {
	User          model.User `json:"user"`
	FollowerCount int64      `json:"follower_count"`
}

// TopUsersCache 热门用户榜的 Redis 缓存
type TopUsersCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTopUsersCache(client *redis.Client, ttl time.Duration) *TopUsersCache {
	return &TopUsersCache{client: client, ttl: ttl}
}

// Get 读取缓存的榜单，未命中或损坏时返回 (nil, false)
func (c *TopUsersCache) Get(ctx context.Context) ([]RankedEntry, bool) {
	raw, err := c.client.Get(ctx, topUsersKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Top users cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var entries []RankedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Warn("Top users cache corrupted, dropping", zap.Error(err))
		_ = c.client.Del(ctx, topUsersKey).Err()
		return nil, false
	}
	return entries, true
}

// Set 写入榜单缓存
func (c *TopUsersCache) Set(ctx context.Context, entries []RankedEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, topUsersKey, raw, c.ttl).Err(); err != nil {
		logger.Warn("Top users cache write failed", zap.Error(err))
	}
}

// Invalidate 关注关系变化后删除榜单缓存
func (c *TopUsersCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, topUsersKey).Err(); err != nil {
		logger.Warn("Top users cache invalidate failed", zap.Error(err))
	}
}
