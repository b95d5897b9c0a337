package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/repo/mysql"
)

// PostTaskCache 定义了后台任务生成和维护热榜缓存的操作接口。
// 刷新分两步：先原子截取总榜生成热榜快照，再用快照回源 MySQL 重建摘要 Hash。
type PostTaskCache interface {
	// CreateHotSnapshot 原子性地从总排行榜 (`PostsRankKey`) 截取前 N 条记录，
	// 生成/覆盖热榜快照 (`HotPostsRankKey`)。
	CreateHotSnapshot(ctx context.Context, n int) error

	// CacheHotPosts 以热榜快照为准，从 MySQL 批量加载帖子摘要写入 Hash (`PostsHashKey`)。
	// - 采用临时 Key + RENAME 策略，刷新失败时旧缓存保持可用。
	// - 摘要中的浏览量取快照分数，保证榜单排序与展示值一致。
	CacheHotPosts(ctx context.Context) error
}

// postTaskCacheImpl 是 PostTaskCache 接口的 Redis 实现。
type postTaskCacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
	postBatch   mysql.PostBatchRepository
	batchSize   int // 回源 MySQL 时单次 IN 查询的帖子数，<=0 表示不拆分
}

// NewPostTaskCache 创建 PostTaskCache 的新实例。
func NewPostTaskCache(
	redisClient *redis.Client,
	logger *core.ZapLogger,
	postBatch mysql.PostBatchRepository,
	batchSize int,
) PostTaskCache {
	return &postTaskCacheImpl{
		redisClient: redisClient,
		logger:      logger,
		postBatch:   postBatch,
		batchSize:   batchSize,
	}
}

// hotSnapshotScript 在 Redis 内部完成 ZREVRANGE -> DEL -> ZADD，
// 避免截取与覆盖之间出现读到半成品快照的窗口。
var hotSnapshotScript = redis.NewScript(`
	-- KEYS[1]: source ZSet (total rank)
	-- KEYS[2]: destination ZSet (hot snapshot)
	-- ARGV[1]: number of items to copy (n)

	local items_with_scores = redis.call("ZREVRANGE", KEYS[1], 0, tonumber(ARGV[1]) - 1, "WITHSCORES")
	redis.call("DEL", KEYS[2])

	if #items_with_scores > 0 then
		local args_for_zadd = { KEYS[2] }
		for i = 1, #items_with_scores, 2 do
			table.insert(args_for_zadd, items_with_scores[i+1]) -- score
			table.insert(args_for_zadd, items_with_scores[i])   -- member
		end
		redis.call("ZADD", unpack(args_for_zadd))
	end
	return #items_with_scores / 2
`)

// CreateHotSnapshot 实现热榜快照的生成。
func (c *postTaskCacheImpl) CreateHotSnapshot(ctx context.Context, n int) error {
	if n <= 0 {
		c.logger.Info("CreateHotSnapshot: 请求的热榜大小小于或等于 0，操作取消。", zap.Int("n", n))
		return nil
	}

	_, err := hotSnapshotScript.Run(ctx, c.redisClient,
		[]string{constant.PostsRankKey, constant.HotPostsRankKey}, n).Result()
	if err != nil {
		c.logger.Error("执行 Lua 脚本创建热榜快照失败",
			zap.Error(err),
			zap.String("sourceKey", constant.PostsRankKey),
			zap.String("destinationKey", constant.HotPostsRankKey),
			zap.Int("n", n),
		)
		return fmt.Errorf("创建热榜快照 (Top %d) 失败: %w", n, err)
	}

	c.logger.Info("成功创建/更新热榜快照",
		zap.String("key", constant.HotPostsRankKey),
		zap.Int("size_n", n),
	)
	return nil
}

// fetchPostsInBatches 按 batchSize 分批回源 MySQL，控制单条 IN 查询的规模。
func (c *postTaskCacheImpl) fetchPostsInBatches(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	if c.batchSize <= 0 || len(ids) <= c.batchSize {
		return c.postBatch.GetPostsByIDs(ctx, ids)
	}

	posts := make([]*entities.Post, 0, len(ids))
	for start := 0; start < len(ids); start += c.batchSize {
		end := start + c.batchSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk, err := c.postBatch.GetPostsByIDs(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		posts = append(posts, chunk...)
	}
	return posts, nil
}

// CacheHotPosts 实现摘要 Hash 的整体重建。
func (c *postTaskCacheImpl) CacheHotPosts(ctx context.Context) error {
	startTime := time.Now()
	finalHashKey := constant.PostsHashKey
	tempHashKey := finalHashKey + "_temp_" + strconv.FormatInt(time.Now().UnixNano(), 10)

	postScores, err := c.redisClient.ZRevRangeWithScores(ctx, constant.HotPostsRankKey,
		0, int64(constant.HotBoardCacheSize-1)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Error("从热榜快照获取帖子分数失败", zap.Error(err), zap.String("key", constant.HotPostsRankKey))
		return fmt.Errorf("获取热榜快照失败: %w", err)
	}

	if len(postScores) == 0 {
		// 快照为空时清空摘要 Hash，读路径将走 ErrCacheMiss 降级。
		c.logger.Info("热榜快照为空，清空帖子摘要 Hash 缓存", zap.String("key", finalHashKey))
		if delErr := c.redisClient.Del(ctx, finalHashKey).Err(); delErr != nil {
			c.logger.Error("清空帖子摘要 Hash 缓存失败", zap.Error(delErr), zap.String("key", finalHashKey))
		}
		return nil
	}

	hotPostIDs := make([]uint64, 0, len(postScores))
	scoreByID := make(map[uint64]float64, len(postScores))
	for _, z := range postScores {
		idStr, ok := z.Member.(string)
		if !ok {
			return fmt.Errorf("热榜快照 (key: %s) 成员类型非字符串 (member: %v)，数据异常",
				constant.HotPostsRankKey, z.Member)
		}
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			return fmt.Errorf("解析热榜快照成员 ID %q 失败: %w", idStr, parseErr)
		}
		hotPostIDs = append(hotPostIDs, id)
		scoreByID[id] = z.Score
	}

	postsFromDB, dbErr := c.fetchPostsInBatches(ctx, hotPostIDs)
	if dbErr != nil {
		c.logger.Error("从 MySQL 批量获取热门帖子失败，本次缓存刷新中止，现有缓存保留。",
			zap.Error(dbErr), zap.Int("idCount", len(hotPostIDs)))
		return fmt.Errorf("从数据库获取帖子数据失败: %w", dbErr)
	}

	summaries := vo.MapPostsToSummariesVO(postsFromDB)
	dataToCache := make(map[string]interface{}, len(summaries))
	for i := range summaries {
		// 展示值跟随快照分数，与榜单排序保持一致。
		if score, ok := scoreByID[summaries[i].ID]; ok {
			summaries[i].ViewCount = int64(score)
		}
		jsonData, jsonErr := json.Marshal(summaries[i])
		if jsonErr != nil {
			c.logger.Error("序列化帖子摘要失败，跳过该帖子", zap.Error(jsonErr), zap.Uint64("postID", summaries[i].ID))
			continue
		}
		dataToCache[strconv.FormatUint(summaries[i].ID, 10)] = jsonData
	}

	if len(dataToCache) == 0 {
		c.logger.Error("未能准备任何有效的帖子摘要进行缓存，现有缓存保留。",
			zap.Int("hotIDsFromSnapshot", len(hotPostIDs)),
			zap.Int("dbPostsFetched", len(postsFromDB)),
		)
		return errors.New("未能准备有效的帖子摘要进行缓存，操作中止")
	}

	pipe := c.redisClient.Pipeline()
	pipe.Del(ctx, tempHashKey)
	pipe.HMSet(ctx, tempHashKey, dataToCache)
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		c.logger.Error("写入临时摘要 Hash 失败，现有缓存保留。",
			zap.Error(execErr), zap.String("tempHashKey", tempHashKey))
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("写入临时帖子摘要缓存 (key: %s) 失败: %w", tempHashKey, execErr)
	}

	if renameErr := c.redisClient.Rename(ctx, tempHashKey, finalHashKey).Err(); renameErr != nil {
		c.logger.Error("重命名临时摘要 Hash 到最终 Key 失败",
			zap.Error(renameErr),
			zap.String("tempHashKey", tempHashKey),
			zap.String("finalHashKey", finalHashKey),
		)
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("重命名临时摘要缓存 (key: %s -> %s) 失败: %w", tempHashKey, finalHashKey, renameErr)
	}

	c.logger.Info("成功刷新帖子摘要 Hash 缓存",
		zap.String("key", finalHashKey),
		zap.Int("cachedCount", len(dataToCache)),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}
