package main

import (
	"fmt"
	"net/http"
	"time"

	"chirp-go/internal/api/handler"
	"chirp-go/internal/api/middleware"
	"chirp-go/internal/api/router"
	"chirp-go/internal/auth"
	"chirp-go/internal/cache"
	"chirp-go/internal/config"
	"chirp-go/internal/infra/database"
	infraES "chirp-go/internal/infra/elasticsearch"
	infraKafka "chirp-go/internal/infra/kafka"
	infraMinio "chirp-go/internal/infra/minio"
	infraRedis "chirp-go/internal/infra/redis"
	"chirp-go/internal/model"
	"chirp-go/internal/repository"
	"chirp-go/internal/service"
	"chirp-go/pkg/logger"

	_ "chirp-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Chirp-Go API
// @version 1.0
// @description 微博客社交平台 API 服务

// @contact.name API Support
// @contact.email support@chirp.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 注册连接表并自动迁移
	db := database.Get()
	if err := model.SetupJoinTables(db); err != nil {
		logger.Fatal("Failed to setup join tables", zap.Error(err))
	}
	if err := database.AutoMigrate(
		&model.User{},
		&model.Tweet{},
		&model.Followship{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowshipRepository(db)
	tweetRepo := repository.NewTweetRepository(db)

	// JWT 密钥在这里注入，业务代码不读全局配置
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.App.Name, cfg.JWT.ExpireDuration())

	var publisher service.EventPublisher
	if topic, ok := cfg.Kafka.Topics["user_events"]; ok {
		publisher = infraKafka.NewPublisher(topic)
	}

	topCache := cache.NewTopUsersCache(infraRedis.Get(), cfg.Rank.CacheTTLDuration())

	authService := service.NewAuthService(userRepo, jwtService, publisher)
	userService := service.NewUserService(userRepo, followRepo, tweetRepo, publisher)
	relationService := service.NewRelationService(followRepo, userRepo, topCache, publisher)
	searchService := service.NewSearchService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	relationHandler := handler.NewRelationHandler(relationService)
	searchHandler := handler.NewSearchHandler(searchService)

	// 登录者关注集合中间件（个人页/列表/热门榜都依赖它算 is_followed）
	viewerMiddleware := middleware.ViewerContext(func(userID int64) (map[int64]bool, error) {
		ids, err := followRepo.ListFollowingIDs(userID)
		if err != nil {
			return nil, err
		}
		following := make(map[int64]bool, len(ids))
		for _, id := range ids {
			following[id] = true
		}
		return following, nil
	})

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, userHandler, relationHandler, searchHandler,
		middleware.AuthRequired(jwtService), viewerMiddleware)

	// 启动HTTP服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
