package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

func TestPostRankRepository_IncrementRank(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewPostRankRepository(client, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.IncrementRank(ctx, 7))
	require.NoError(t, repo.IncrementRank(ctx, 7))
	require.NoError(t, repo.IncrementRank(ctx, 8))

	score, err := mr.ZScore(constant.PostsRankKey, "7")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)
}

func TestPostRankRepository_GetPostRank(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewPostRankRepository(client, newTestLogger(t))
	ctx := context.Background()

	mr.ZAdd(constant.HotPostsRankKey, 30, "1")
	mr.ZAdd(constant.HotPostsRankKey, 20, "2")
	mr.ZAdd(constant.HotPostsRankKey, 10, "3")

	rank, err := repo.GetPostRank(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rank)

	rank, err = repo.GetPostRank(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rank)

	// 不在榜单中的帖子返回 -1，且不报错。
	rank, err = repo.GetPostRank(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), rank)
}

func TestPostRankRepository_GetPostsByRange(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewPostRankRepository(client, newTestLogger(t))
	ctx := context.Background()

	mr.ZAdd(constant.HotPostsRankKey, 30, "1")
	mr.ZAdd(constant.HotPostsRankKey, 20, "2")
	mr.ZAdd(constant.HotPostsRankKey, 10, "3")

	ids, err := repo.GetPostsByRange(ctx, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, ids)

	ids, err = repo.GetPostsByRange(ctx, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, ids)
}

func TestPostRankRepository_BackendUnavailable(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewPostRankRepository(client, newTestLogger(t))
	ctx := context.Background()

	// Redis 不可达：通信错误归入后端不可用分类，redis.Nil 不受影响。
	mr.Close()

	_, err := repo.GetPostRank(ctx, 1)
	assert.ErrorIs(t, err, myErrors.ErrBackendUnavailable)

	_, err = repo.GetPostsByRange(ctx, 0, 1)
	assert.ErrorIs(t, err, myErrors.ErrBackendUnavailable)
}

func TestPostTaskCache_CreateHotSnapshot(t *testing.T) {
	mr, client := setupTestRedis(t)
	taskCache := NewPostTaskCache(client, newTestLogger(t), nil, 0)
	ctx := context.Background()

	mr.ZAdd(constant.PostsRankKey, 5, "1")
	mr.ZAdd(constant.PostsRankKey, 15, "2")
	mr.ZAdd(constant.PostsRankKey, 10, "3")

	require.NoError(t, taskCache.CreateHotSnapshot(ctx, 2))

	members, err := mr.ZMembers(constant.HotPostsRankKey)
	require.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Contains(t, members, "2")
	assert.Contains(t, members, "3")

	// 再次刷新覆盖旧快照而不是叠加。
	mr.ZAdd(constant.PostsRankKey, 100, "9")
	require.NoError(t, taskCache.CreateHotSnapshot(ctx, 1))
	members, err = mr.ZMembers(constant.HotPostsRankKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, members)
}

// stubBatchRepo 以固定数据充当 MySQL 批量查询仓库。
type stubBatchRepo struct {
	posts []*entities.Post
	calls int
}

func (s *stubBatchRepo) GetPostsByIDs(_ context.Context, ids []uint64) ([]*entities.Post, error) {
	s.calls++
	matched := make([]*entities.Post, 0, len(ids))
	for _, id := range ids {
		for _, p := range s.posts {
			if p.ID == id {
				matched = append(matched, p)
			}
		}
	}
	return matched, nil
}

func TestPostTaskCache_CacheHotPostsAndRead(t *testing.T) {
	mr, client := setupTestRedis(t)
	logger := newTestLogger(t)
	ctx := context.Background()

	now := time.Now()
	batch := &stubBatchRepo{posts: []*entities.Post{
		{Title: "热门帖子", Author: "alice", ViewCount: 3},
		{Title: "次热帖子", Author: "bob", ViewCount: 2},
	}}
	batch.posts[0].ID = 1
	batch.posts[0].CreatedAt = now
	batch.posts[1].ID = 2
	batch.posts[1].CreatedAt = now

	mr.ZAdd(constant.HotPostsRankKey, 42, "1")
	mr.ZAdd(constant.HotPostsRankKey, 7, "2")

	taskCache := NewPostTaskCache(client, logger, batch, 0)
	require.NoError(t, taskCache.CacheHotPosts(ctx))

	rankRepo := NewPostRankRepository(client, logger)
	cache := NewCache(rankRepo, client, logger)

	hot, err := cache.GetHotPosts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, hot, 2)
	// 榜单顺序与快照排名一致，浏览量取快照分数。
	assert.Equal(t, uint64(1), hot[0].ID)
	assert.Equal(t, int64(42), hot[0].ViewCount)
	assert.Equal(t, uint64(2), hot[1].ID)
	assert.Equal(t, int64(7), hot[1].ViewCount)
}

func TestPostTaskCache_CacheHotPosts_Batched(t *testing.T) {
	mr, client := setupTestRedis(t)
	logger := newTestLogger(t)
	ctx := context.Background()

	batch := &stubBatchRepo{}
	for i := uint64(1); i <= 3; i++ {
		p := &entities.Post{Title: "帖子", Author: "alice", ViewCount: int64(i)}
		p.ID = i
		p.CreatedAt = time.Now()
		batch.posts = append(batch.posts, p)
	}

	mr.ZAdd(constant.HotPostsRankKey, 30, "1")
	mr.ZAdd(constant.HotPostsRankKey, 20, "2")
	mr.ZAdd(constant.HotPostsRankKey, 10, "3")

	// batchSize=2，3 条记录应分两次回源。
	taskCache := NewPostTaskCache(client, logger, batch, 2)
	require.NoError(t, taskCache.CacheHotPosts(ctx))
	assert.Equal(t, 2, batch.calls)

	rankRepo := NewPostRankRepository(client, logger)
	cache := NewCache(rankRepo, client, logger)
	hot, err := cache.GetHotPosts(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, hot, 3)
}

func TestCache_GetHotPosts_Miss(t *testing.T) {
	_, client := setupTestRedis(t)
	logger := newTestLogger(t)
	rankRepo := NewPostRankRepository(client, logger)
	cache := NewCache(rankRepo, client, logger)

	_, err := cache.GetHotPosts(context.Background(), 10)
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
}

func TestCache_GetPosts_SkipsMissing(t *testing.T) {
	mr, client := setupTestRedis(t)
	logger := newTestLogger(t)
	rankRepo := NewPostRankRepository(client, logger)
	cache := NewCache(rankRepo, client, logger)

	mr.HSet(constant.PostsHashKey, "5", `{"id":5,"title":"帖子五","author":"zero","view_count":1}`)

	posts, err := cache.GetPosts(context.Background(), []uint64{5, 6})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(5), posts[0].ID)
}
