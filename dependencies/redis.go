// dependencies/redis.go
package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/board_service/config"
)

// InitRedis 初始化 Redis 客户端并验证连通性。
// Redis 在本服务中只承载派生数据（排行榜与热榜缓存），连不上属于启动期致命错误，
// 运行期的单次失败则由各仓库降级处理。
func InitRedis(redisCfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("Redis 地址 (redisConfig.address) 未配置")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
		PoolSize: redisCfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("无法连接到 Redis", zap.String("address", redisCfg.Address), zap.Error(err))
		return nil, fmt.Errorf("无法连接到 Redis (%s): %w", redisCfg.Address, err)
	}

	logger.Info("成功连接到 Redis",
		zap.String("address", redisCfg.Address),
		zap.Int("db", redisCfg.DB),
	)
	return client, nil
}
