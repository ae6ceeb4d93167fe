package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"chirp-go/internal/config"
	"chirp-go/pkg/logger"

	"go.uber.org/zap"
)

// UsersIndexName 返回 users 索引名
func UsersIndexName() string {
	name := config.GetElasticsearch().Index["users"]
	if name == "" {
		name = "users"
	}
	return name
}

// GetUsersIndexMapping 返回 users 索引的 mapping
func GetUsersIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"account": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"name": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 50}}
				},
				"introduction": {"type": "text"},
				"avatar": {"type": "keyword", "index": false},
				"follower_count": {"type": "long"},
				"updated_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// EnsureUsersIndex 确保 users 索引存在，不存在则创建
func EnsureUsersIndex(ctx context.Context) error {
	indexName := UsersIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch users index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(GetUsersIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch users index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureUsersIndex(ctx)
}
