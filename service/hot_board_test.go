package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
)

// stubCache 是 redis.Cache 的内存替身，按预设结果响应热榜读取。
type stubCache struct {
	posts []vo.PostSummaryResponse
	err   error
	lastN int
}

func (s *stubCache) GetHotPosts(_ context.Context, n int) ([]vo.PostSummaryResponse, error) {
	s.lastN = n
	if s.err != nil {
		return nil, s.err
	}
	return s.posts, nil
}

func (s *stubCache) GetPosts(context.Context, []uint64) ([]vo.PostSummaryResponse, error) {
	return nil, nil
}

// stubRankRepo 是 redis.PostRankRepository 的内存替身。
type stubRankRepo struct {
	rank int64
	err  error
}

func (s *stubRankRepo) IncrementRank(context.Context, uint64) error { return nil }

func (s *stubRankRepo) GetPostRank(context.Context, uint64) (int64, error) {
	return s.rank, s.err
}

func (s *stubRankRepo) GetPostsByRange(context.Context, int64, int64) ([]uint64, error) {
	return nil, nil
}

func TestHotBoardService_GetHotPosts(t *testing.T) {
	cache := &stubCache{posts: []vo.PostSummaryResponse{
		{ID: 7, Title: "热门帖子"},
		{ID: 3, Title: "次热帖子"},
	}}
	svc := NewHotBoardService(cache, &stubRankRepo{}, config.HotBoardConfig{TopN: 50}, newTestLogger(t))

	posts, err := svc.GetHotPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, uint64(7), posts[0].ID)
	assert.Equal(t, 50, cache.lastN)
}

func TestHotBoardService_GetHotPosts_SnapshotMissing(t *testing.T) {
	// 快照尚未生成时返回空榜而不是错误。
	cache := &stubCache{err: myErrors.ErrCacheMiss}
	svc := NewHotBoardService(cache, &stubRankRepo{}, config.HotBoardConfig{TopN: 10}, newTestLogger(t))

	posts, err := svc.GetHotPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestHotBoardService_GetHotPosts_CacheError(t *testing.T) {
	cache := &stubCache{err: errors.New("连接被拒绝")}
	svc := NewHotBoardService(cache, &stubRankRepo{}, config.HotBoardConfig{}, newTestLogger(t))

	_, err := svc.GetHotPosts(context.Background())
	require.Error(t, err)
}

func TestHotBoardService_GetPostRank(t *testing.T) {
	svc := NewHotBoardService(&stubCache{}, &stubRankRepo{rank: 4}, config.HotBoardConfig{}, newTestLogger(t))

	rank, err := svc.GetPostRank(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rank)
}

func TestHotBoardService_GetPostRank_NotOnBoard(t *testing.T) {
	svc := NewHotBoardService(&stubCache{}, &stubRankRepo{rank: -1}, config.HotBoardConfig{}, newTestLogger(t))

	rank, err := svc.GetPostRank(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), rank)
}
