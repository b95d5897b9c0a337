package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/dependencies"
	"github.com/Xushengqwer/board_service/mq/producer"
	"github.com/Xushengqwer/board_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/board_service/repo/redis"
	boardService "github.com/Xushengqwer/board_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numPosts int
	var configFile string
	var waitSeconds int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numPosts, "n", 50, "要生成的帖子数量 (默认: 50)")
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		absConfigFile = configFile
	}
	fmt.Printf("使用配置 %s，准备生成 %d 条测试帖子\n", absConfigFile, numPosts)

	if numPosts <= 0 || waitSeconds < 0 {
		fmt.Println("错误: -n 必须大于 0 且 -wait 不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.BoardConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}

	// --- 4. 初始化 Kafka 生产者（可选） ---
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化 (Seeder)")
	}

	// --- 5. 初始化 Redis（可选，排行榜加分用） ---
	var rankRepo redisRepo.PostRankRepository
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，排行榜分数将不写入", zap.Error(redisErr))
	} else {
		rankRepo = redisRepo.NewPostRankRepository(rdb, logger)
	}

	// --- 6. 初始化 Repositories 与 Service ---
	postRepo := mysql.NewPostRepository(db, logger)
	attachmentRepo := mysql.NewAttachmentRepository(db, logger)

	// 填充数据不经过对象存储，附件留空。
	postSvc := boardService.NewPostService(db, postRepo, attachmentRepo, nil, rankRepo, kafkaProducer, cfg.BoardPolicy, logger)
	logger.Info("PostService 已初始化 (Seeder)")

	// --- 7. 执行数据填充 ---
	startTime := time.Now()
	Seed(context.Background(), postSvc, logger, numPosts)
	logger.Info("数据填充主体完成", zap.Duration("耗时", time.Since(startTime)))

	// --- 8. 等待异步旁路（排行榜加分 / Kafka 事件）落地后再退出 ---
	if waitSeconds > 0 {
		logger.Info("等待异步任务完成", zap.Int("seconds", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}
	fmt.Printf("数据填充完成，总耗时 %v\n", time.Since(startTime))
}
