package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/pagination"
	"github.com/Xushengqwer/board_service/repo/mysql"
)

// PostListService 定义了帖子列表查询的业务逻辑接口。
type PostListService interface {
	// ListPosts 分页查询帖子摘要列表，可选关键字过滤。
	// - 页码与每页数量在 DTO 层完成默认值与上限收敛。
	// - 返回的分页窗口包含页码导航条所需的全部数据（块状页码、前后页等）。
	// - 请求页超出范围时收敛到最后一页，而不是返回空页。
	ListPosts(ctx context.Context, req *dto.ListPostsRequestDTO) (*vo.PostListPageVO, error)
}

// postListService 是 PostListService 接口的具体实现。
type postListService struct {
	postRepo mysql.PostRepository
	policy   config.BoardPolicyConfig
	logger   *core.ZapLogger
}

// NewPostListService 是 postListService 的构造函数。
func NewPostListService(postRepo mysql.PostRepository, policy config.BoardPolicyConfig, logger *core.ZapLogger) PostListService {
	return &postListService{
		postRepo: postRepo,
		policy:   policy,
		logger:   logger,
	}
}

// ListPosts 实现摘要列表的分页查询。
func (s *postListService) ListPosts(ctx context.Context, req *dto.ListPostsRequestDTO) (*vo.PostListPageVO, error) {
	page := req.GetPage()
	pageSize := req.GetPageSize(s.policy.GetDefaultPageSize(), s.policy.GetMaxPageSize())
	offset := (page - 1) * pageSize

	posts, total, err := s.postRepo.ListPosts(ctx, offset, pageSize, req.Keyword)
	if err != nil {
		return nil, fmt.Errorf("查询帖子列表失败: %w", err)
	}

	window := pagination.ComputeWindow(total, page, pageSize, constant.PageBlockSize)

	// 请求页超出实际页数时窗口被收敛（例如最后一页的帖子刚被删除），
	// 按收敛后的页码重取一次数据。
	if window.Page != page {
		s.logger.Info("请求页码超出范围，收敛到有效页",
			zap.Int("requestedPage", page), zap.Int("resolvedPage", window.Page))
		posts, _, err = s.postRepo.ListPosts(ctx, window.Offset(), pageSize, req.Keyword)
		if err != nil {
			return nil, fmt.Errorf("查询帖子列表失败: %w", err)
		}
	}

	return &vo.PostListPageVO{
		Posts:      vo.MapPostsToSummariesVO(posts),
		Pagination: window,
	}, nil
}
