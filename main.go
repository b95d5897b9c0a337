package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/board_service/docs" // swag 生成的 API 文档

	appConfig "github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/controller"
	"github.com/Xushengqwer/board_service/dependencies"
	"github.com/Xushengqwer/board_service/mq/producer"
	"github.com/Xushengqwer/board_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/board_service/repo/redis"
	"github.com/Xushengqwer/board_service/router"
	"github.com/Xushengqwer/board_service/service"
	"github.com/Xushengqwer/board_service/tasks"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// @title           Board Service API
// @version         1.0
// @description     留言板服务，提供帖子发布、列表、详情、口令闸门与热门榜单等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8083

// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.BoardConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 启动时打印生效配置，环境变量覆盖的结果一目了然。
	if configBytes, jsonErr := json.MarshalIndent(cfg, "", "  "); jsonErr == nil {
		log.Printf("配置加载成功，生效配置:\n%s\n", configBytes)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if syncErr := logger.Logger().Sync(); syncErr != nil {
			log.Printf("WARN: 日志 Sync 失败: %v\n", syncErr)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	var tracerShutdown func(context.Context) error
	if cfg.TracerConfig.Enabled {
		var err error
		tracerShutdown, err = sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(shutdownErr))
			}
		}()
		logger.Info("分布式追踪已初始化")
		// 本服务目前没有出站 HTTP 调用，仅初始化 Transport 备用。
		_ = otelhttp.NewTransport(http.DefaultTransport)
	} else {
		logger.Info("分布式追踪已禁用")
		tracerShutdown = func(ctx context.Context) error { return nil }
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 COS 客户端（附件对象存储，可选）
	var cosClient dependencies.COSClientInterface
	if cfg.COSConfig.BucketName != "" {
		var cosErr error
		cosClient, cosErr = dependencies.InitCOS(&cfg.COSConfig, logger)
		if cosErr != nil {
			logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
		}
		logger.Info("COS 附件存储客户端初始化成功")
	} else {
		logger.Warn("未配置 COS 存储桶，附件将只保存元数据")
	}

	// 4.4 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，帖子领域事件将不发送")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	postRepo := mysql.NewPostRepository(db, logger)
	attachmentRepo := mysql.NewAttachmentRepository(db, logger)
	postBatchRepo := mysql.NewPostBatchRepository(db, logger)
	logger.Debug("MySQL Repositories 初始化完成")

	rankRepo := redisrepo.NewPostRankRepository(rdb, logger)
	cacheRepo := redisrepo.NewCache(rankRepo, rdb, logger)
	taskRepo := redisrepo.NewPostTaskCache(rdb, logger, postBatchRepo, cfg.HotBoard.RefreshBatchSize)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	postService := service.NewPostService(db, postRepo, attachmentRepo, cosClient, rankRepo, kafkaProducer, cfg.BoardPolicy, logger)
	postListService := service.NewPostListService(postRepo, cfg.BoardPolicy, logger)
	hotBoardService := service.NewHotBoardService(cacheRepo, rankRepo, cfg.HotBoard, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	postController := controller.NewPostController(postService, postListService)
	hotBoardController := controller.NewHotBoardController(hotBoardService)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化定时任务 ---
	cacheTask := tasks.NewHotBoardCacheTask(taskRepo, cfg.HotBoard, logger)
	// 启动时先预热一次，热榜在首个 cron 周期前即可用。
	func() {
		warmCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		cacheTask.RunOnce(warmCtx)
	}()
	logger.Info("后台定时任务已初始化并启动")

	// --- 9. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, postController, hotBoardController)
	logger.Info("Gin 路由器已设置")

	// --- 10. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// --- 11. 优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("收到关停信号，开始优雅退出", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// 先停 HTTP 入口（排空在途请求），再停后台任务与出站连接。
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已关闭")
	}

	cacheStopCtx := cacheTask.Stop()
	select {
	case <-cacheStopCtx.Done():
		logger.Info("热榜缓存任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}
	if err := rdb.Close(); err != nil {
		logger.Error("关闭 Redis 连接失败", zap.Error(err))
	}

	logger.Info("服务已成功关闭")
}
