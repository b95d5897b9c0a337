package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/repo/mysql"
)

func newTestListService(t *testing.T) (PostListService, PostService) {
	t.Helper()
	db := setupTestDB(t)
	logger := newTestLogger(t)
	postRepo := mysql.NewPostRepository(db, logger)
	attachmentRepo := mysql.NewAttachmentRepository(db, logger)
	policy := config.BoardPolicyConfig{}
	listSvc := NewPostListService(postRepo, policy, logger)
	postSvc := NewPostService(db, postRepo, attachmentRepo, nil, nil, nil, policy, logger)
	return listSvc, postSvc
}

func TestPostListService_ListPosts(t *testing.T) {
	listSvc, postSvc := newTestListService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
			Title:   fmt.Sprintf("帖子 %d", i),
			Content: "正文",
			Author:  "zero",
		}, nil)
		require.NoError(t, err)
	}

	page, err := listSvc.ListPosts(ctx, &dto.ListPostsRequestDTO{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Posts, 10)
	assert.Equal(t, int64(25), page.Pagination.TotalCount)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, page.Pagination.Pages)
	assert.False(t, page.Pagination.HasPrevPage)
	assert.True(t, page.Pagination.HasNextPage)

	// 最新创建的帖子排在最前。
	assert.Equal(t, "帖子 24", page.Posts[0].Title)

	last, err := listSvc.ListPosts(ctx, &dto.ListPostsRequestDTO{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, last.Posts, 5)
	assert.True(t, last.Pagination.HasPrevPage)
	assert.False(t, last.Pagination.HasNextPage)
}

func TestPostListService_ListPosts_PageOutOfRange(t *testing.T) {
	listSvc, postSvc := newTestListService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
			Title: "帖子", Content: "正文", Author: "zero",
		}, nil)
		require.NoError(t, err)
	}

	// 超出范围的页码收敛到最后一页并返回该页数据。
	page, err := listSvc.ListPosts(ctx, &dto.ListPostsRequestDTO{Page: 99, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.Page)
	assert.Len(t, page.Posts, 1)
}

func TestPostListService_ListPosts_Keyword(t *testing.T) {
	listSvc, postSvc := newTestListService(t)
	ctx := context.Background()

	_, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
		Title: "Go 语言入门", Content: "协程", Author: "alice",
	}, nil)
	require.NoError(t, err)
	_, err = postSvc.CreatePost(ctx, &dto.CreatePostRequest{
		Title: "烹饪日志", Content: "家常菜", Author: "bob",
	}, nil)
	require.NoError(t, err)

	page, err := listSvc.ListPosts(ctx, &dto.ListPostsRequestDTO{Page: 1, PageSize: 10, Keyword: "go"})
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "Go 语言入门", page.Posts[0].Title)
	assert.Equal(t, int64(1), page.Pagination.TotalCount)
}

func TestPostListService_ListPosts_Empty(t *testing.T) {
	listSvc, _ := newTestListService(t)

	page, err := listSvc.ListPosts(context.Background(), &dto.ListPostsRequestDTO{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, int64(0), page.Pagination.TotalCount)
	// 空列表仍然是"第 1 页 / 共 1 页"，导航条不消失。
	assert.Equal(t, 1, page.Pagination.TotalPages)
	assert.Equal(t, []int{1}, page.Pagination.Pages)
}
