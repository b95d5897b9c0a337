package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/myErrors"
)

// PostRankRepository 定义了帖子热度排行榜相关的 Redis 操作接口。
// - 总榜 (`PostsRankKey`) 由每次详情读取异步加分维护，是派生数据；
//   权威浏览量始终在 MySQL，Redis 丢失只影响榜单，不影响计数。
type PostRankRepository interface {
	// IncrementRank 将指定帖子在总排行榜 ZSet 中的分数加一。
	// - 由详情读取路径异步调用，失败只记录日志，不影响读取结果。
	IncrementRank(ctx context.Context, postID uint64) error

	// GetPostRank 获取指定帖子在热榜快照 (`HotPostsRankKey`) 中的排名（0-based, 降序）。
	// - 返回 -1 表示帖子不在榜单中，此时 error 为 nil。
	GetPostRank(ctx context.Context, postID uint64) (int64, error)

	// GetPostsByRange 从热榜快照获取指定排名范围内的帖子 ID 列表。
	// - start, stop 是基于 0 的排名索引，含两端。
	GetPostsByRange(ctx context.Context, start, stop int64) ([]uint64, error)
}

// postRankRepository 是 PostRankRepository 接口的 Redis 实现。
type postRankRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewPostRankRepository 创建 PostRankRepository 实例。
func NewPostRankRepository(redisClient *redis.Client, logger *core.ZapLogger) PostRankRepository {
	return &postRankRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

// IncrementRank 实现总排行榜分数自增。
func (r *postRankRepository) IncrementRank(ctx context.Context, postID uint64) error {
	member := strconv.FormatUint(postID, 10)
	if err := r.redisClient.ZIncrBy(ctx, constant.PostsRankKey, 1, member).Err(); err != nil {
		r.logger.Error("总排行榜分数自增失败",
			zap.Error(err),
			zap.Uint64("postID", postID),
			zap.String("key", constant.PostsRankKey),
		)
		return fmt.Errorf("帖子(ID: %d)排行榜分数自增失败: %w", postID, myErrors.WrapBackend(err))
	}
	return nil
}

// GetPostRank 实现获取帖子在热榜快照中的排名。
// 排名是 0-based，分数越高排名越靠前 (ZREVRANK 的结果)。
func (r *postRankRepository) GetPostRank(ctx context.Context, postID uint64) (int64, error) {
	key := constant.HotPostsRankKey
	member := strconv.FormatUint(postID, 10)

	rank, err := r.redisClient.ZRevRank(ctx, key, member).Result()
	if err != nil {
		// redis.Nil 表示成员不在 ZSet 中（或 ZSet 不存在），不算通信错误。
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		r.logger.Error("从 Redis 获取帖子排名失败",
			zap.Error(err),
			zap.Uint64("postID", postID),
			zap.String("key", key),
		)
		return -1, fmt.Errorf("获取帖子(ID: %d)在热榜(key: %s)中的排名失败: %w", postID, key, myErrors.WrapBackend(err))
	}
	return rank, nil
}

// GetPostsByRange 实现按排名范围获取帖子 ID。
func (r *postRankRepository) GetPostsByRange(ctx context.Context, start, stop int64) ([]uint64, error) {
	key := constant.HotPostsRankKey

	members, err := r.redisClient.ZRevRange(ctx, key, start, stop).Result()
	if err != nil {
		r.logger.Error("按排名范围获取帖子 ID 失败",
			zap.Error(err),
			zap.String("key", key),
			zap.Int64("start", start),
			zap.Int64("stop", stop),
		)
		return nil, fmt.Errorf("获取热榜排名范围 [%d, %d] 失败: %w", start, stop, myErrors.WrapBackend(err))
	}

	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, parseErr := strconv.ParseUint(m, 10, 64)
		if parseErr != nil {
			r.logger.Warn("热榜 ZSet 成员无法解析为帖子 ID，已跳过",
				zap.String("member", m),
				zap.String("key", key),
			)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
