package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
)

// Cache 定义了热门帖子榜单的读缓存接口。
// - 数据由后台任务写入（见 PostTaskCache），请求路径只读，未命中时返回 ErrCacheMiss。
// - 榜单是刷新时刻的快照，浏览量是快照值，不随实时读取变化。
type Cache interface {
	// GetHotPosts 按排名顺序获取热榜前 n 条帖子摘要。
	// - 热榜快照为空（尚未生成或已被清空）时返回 myErrors.ErrCacheMiss。
	// - Hash 中缺失的条目被跳过，不影响其余结果。
	GetHotPosts(ctx context.Context, n int) ([]vo.PostSummaryResponse, error)

	// GetPosts 按 ID 列表从帖子摘要 Hash 批量获取缓存条目。
	// - 未缓存的 ID 被静默跳过，结果顺序与入参中命中的 ID 保持一致。
	GetPosts(ctx context.Context, postIDs []uint64) ([]vo.PostSummaryResponse, error)
}

// cacheImpl 是 Cache 接口的 Redis 实现。
type cacheImpl struct {
	rankRepo    PostRankRepository
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewCache 是 cacheImpl 的构造函数。
func NewCache(rankRepo PostRankRepository, redisClient *redis.Client, logger *core.ZapLogger) Cache {
	return &cacheImpl{
		rankRepo:    rankRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetHotPosts 实现热榜摘要的按序读取。
func (c *cacheImpl) GetHotPosts(ctx context.Context, n int) ([]vo.PostSummaryResponse, error) {
	if n <= 0 {
		return []vo.PostSummaryResponse{}, nil
	}

	ids, err := c.rankRepo.GetPostsByRange(ctx, 0, int64(n-1))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		// 快照不存在或为空，让上层决定是降级还是返回空榜。
		return nil, myErrors.ErrCacheMiss
	}

	return c.GetPosts(ctx, ids)
}

// GetPosts 实现摘要 Hash 的批量读取。
func (c *cacheImpl) GetPosts(ctx context.Context, postIDs []uint64) ([]vo.PostSummaryResponse, error) {
	if len(postIDs) == 0 {
		return []vo.PostSummaryResponse{}, nil
	}

	fields := make([]string, 0, len(postIDs))
	for _, id := range postIDs {
		fields = append(fields, strconv.FormatUint(id, 10))
	}

	values, err := c.redisClient.HMGet(ctx, constant.PostsHashKey, fields...).Result()
	if err != nil {
		c.logger.Error("批量读取帖子摘要 Hash 失败",
			zap.Error(err),
			zap.String("key", constant.PostsHashKey),
			zap.Int("idCount", len(postIDs)),
		)
		return nil, fmt.Errorf("批量读取帖子摘要缓存失败: %w", myErrors.WrapBackend(err))
	}

	posts := make([]vo.PostSummaryResponse, 0, len(values))
	for i, raw := range values {
		if raw == nil {
			// 快照刷新与榜单截取之间的正常缝隙，跳过即可。
			continue
		}
		str, ok := raw.(string)
		if !ok {
			c.logger.Warn("帖子摘要 Hash 条目类型异常，已跳过",
				zap.String("field", fields[i]),
				zap.String("key", constant.PostsHashKey),
			)
			continue
		}
		var summary vo.PostSummaryResponse
		if unmarshalErr := json.Unmarshal([]byte(str), &summary); unmarshalErr != nil {
			c.logger.Warn("反序列化帖子摘要缓存失败，已跳过",
				zap.Error(unmarshalErr),
				zap.String("field", fields[i]),
			)
			continue
		}
		posts = append(posts, summary)
	}
	return posts, nil
}
