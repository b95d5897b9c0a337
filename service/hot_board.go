package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/repo/redis"
)

// HotBoardService 定义了热门帖子榜单的查询接口。
// 榜单完全由后台任务预热的 Redis 快照提供，请求路径不回源 MySQL，
// 快照尚未生成时返回空榜而不是报错。
type HotBoardService interface {
	// GetHotPosts 获取热榜前 N 条帖子摘要（按热度降序）。
	GetHotPosts(ctx context.Context) ([]vo.PostSummaryResponse, error)

	// GetPostRank 查询指定帖子在热榜中的名次（0-based），不在榜时返回 -1。
	GetPostRank(ctx context.Context, postID uint64) (int64, error)
}

// hotBoardService 是 HotBoardService 接口的具体实现。
type hotBoardService struct {
	cache    redis.Cache
	rankRepo redis.PostRankRepository
	hotCfg   config.HotBoardConfig
	logger   *core.ZapLogger
}

// NewHotBoardService 是 hotBoardService 的构造函数。
func NewHotBoardService(cache redis.Cache, rankRepo redis.PostRankRepository, hotCfg config.HotBoardConfig, logger *core.ZapLogger) HotBoardService {
	return &hotBoardService{
		cache:    cache,
		rankRepo: rankRepo,
		hotCfg:   hotCfg,
		logger:   logger,
	}
}

// GetHotPosts 实现热榜摘要读取。
func (s *hotBoardService) GetHotPosts(ctx context.Context) ([]vo.PostSummaryResponse, error) {
	posts, err := s.cache.GetHotPosts(ctx, s.hotCfg.GetTopN())
	if err != nil {
		if errors.Is(err, myErrors.ErrCacheMiss) {
			// 快照未生成（服务刚启动或榜单为空）属于正常状态。
			s.logger.Info("热榜快照尚未生成，返回空榜", zap.Int("topN", s.hotCfg.GetTopN()))
			return []vo.PostSummaryResponse{}, nil
		}
		return nil, fmt.Errorf("读取热榜缓存失败: %w", err)
	}
	return posts, nil
}

// GetPostRank 实现帖子热榜名次查询。
func (s *hotBoardService) GetPostRank(ctx context.Context, postID uint64) (int64, error) {
	rank, err := s.rankRepo.GetPostRank(ctx, postID)
	if err != nil {
		return -1, fmt.Errorf("查询帖子热榜名次失败: %w", err)
	}
	return rank, nil
}
