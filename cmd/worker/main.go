package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chirp-go/internal/cache"
	"chirp-go/internal/config"
	"chirp-go/internal/infra/database"
	infraES "chirp-go/internal/infra/elasticsearch"
	infraKafka "chirp-go/internal/infra/kafka"
	infraRedis "chirp-go/internal/infra/redis"
	"chirp-go/internal/model"
	"chirp-go/internal/repository"
	"chirp-go/pkg/logger"

	"go.uber.org/zap"
)

// 用户事件 worker：消费用户领域事件，维护 ES 用户索引和榜单缓存
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	db := database.Get()
	if err := model.SetupJoinTables(db); err != nil {
		logger.Fatal("Failed to setup join tables", zap.Error(err))
	}

	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowshipRepository(db)
	topCache := cache.NewTopUsersCache(infraRedis.Get(), cfg.Rank.CacheTTLDuration())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["user_events"]
	groupID := "chirp-go-user-sync"

	logger.Info("User event worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	syncUser := func(userID int64) error {
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return fmt.Errorf("load user %d: %w", userID, err)
		}
		count, err := followRepo.CountFollowers(userID)
		if err != nil {
			return fmt.Errorf("count followers of %d: %w", userID, err)
		}
		return infraES.SyncUser(ctx, user, count)
	}

	handler := func(event *infraKafka.UserEvent) error {
		switch event.Type {
		case infraKafka.EventUserRegistered, infraKafka.EventUserUpdated:
			return syncUser(event.UserID)

		case infraKafka.EventUserFollowed, infraKafka.EventUserUnfollowed:
			// 粉丝数变了，榜单缓存失效，双方的 ES 文档都要刷新
			topCache.Invalidate(ctx)
			if err := syncUser(event.UserID); err != nil {
				return err
			}
			return syncUser(event.TargetID)

		default:
			logger.Warn("Unknown user event type", zap.String("type", event.Type))
			return nil
		}
	}

	infraKafka.StartUserEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)
}
