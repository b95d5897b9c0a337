package mysql

import (
	"context"
	"sync"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// setupTestDB 构造一个内存 SQLite 数据库并完成建表。
// 连接数限制为 1，并发事务在驱动层被串行化，语义上等价于 InnoDB 的行锁排队。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.Post{}, &entities.Attachment{}))
	return db
}

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

func newTestPost(title, content, author string) *entities.Post {
	return &entities.Post{
		Title:   title,
		Content: content,
		Author:  author,
	}
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := newTestPost("第一篇帖子", "这是正文", "zero")
	post.Secret = "hunter2"
	require.NoError(t, repo.CreatePost(ctx, db, post))
	require.NotZero(t, post.ID)

	got, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Content, got.Content)
	assert.Equal(t, post.Author, got.Author)
	assert.Equal(t, int64(0), got.ViewCount)
	assert.Empty(t, got.Attachments)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestPostRepository_GetPostByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))

	_, err := repo.GetPostByID(context.Background(), 9999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestPostRepository_IncrementViewAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := newTestPost("浏览量测试", "内容", "zero")
	require.NoError(t, repo.CreatePost(ctx, db, post))

	got, err := repo.IncrementViewAndGet(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	got, err = repo.IncrementViewAndGet(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)

	// 纯读取路径不应改变浏览量。
	plain, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), plain.ViewCount)
}

func TestPostRepository_IncrementViewAndGet_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))

	_, err := repo.IncrementViewAndGet(context.Background(), 42)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

// 并发自增必须各自观察到不同的浏览量值：自增与读取在同一事务内，
// 行锁（这里是单连接串行化）保证不会有两个调用读到同一个计数。
func TestPostRepository_IncrementViewAndGet_ConcurrentDistinct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := newTestPost("并发测试", "内容", "zero")
	require.NoError(t, repo.CreatePost(ctx, db, post))

	const workers = 8
	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := repo.IncrementViewAndGet(ctx, post.ID)
			assert.NoError(t, err)
			if got != nil {
				results <- got.ViewCount
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for v := range results {
		assert.False(t, seen[v], "view count %d observed twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, workers)

	final, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), final.ViewCount)
}

func TestPostRepository_ListPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	for _, p := range []*entities.Post{
		newTestPost("学习 Go", "协程漫谈", "alice"),
		newTestPost("烹饪日志", "家常菜的做法", "bob"),
		newTestPost("旅行记", "Go 语言大会见闻", "carol"),
	} {
		require.NoError(t, repo.CreatePost(ctx, db, p))
	}

	posts, total, err := repo.ListPosts(ctx, 0, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, posts, 3)
	// 摘要投影不携带正文与口令。
	for _, p := range posts {
		assert.Empty(t, p.Content)
		assert.Empty(t, p.Secret)
	}

	// 关键字匹配标题或正文，大小写不敏感。
	posts, total, err = repo.ListPosts(ctx, 0, 10, "go")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, posts, 2)

	// 关键字匹配作者。
	posts, total, err = repo.ListPosts(ctx, 0, 10, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, "烹饪日志", posts[0].Title)

	// 无匹配时返回空页与零总数。
	posts, total, err = repo.ListPosts(ctx, 0, 10, "不存在的词")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, posts)
}

func TestPostRepository_ListPosts_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.CreatePost(ctx, db, newTestPost("帖子", "内容", "zero")))
	}

	page1, total, err := repo.ListPosts(ctx, 0, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page1, 2)

	page3, total, err := repo.ListPosts(ctx, 4, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page3, 1)

	// 最新创建（ID最大）的排在最前。
	assert.Greater(t, page1[0].ID, page1[1].ID)
}

func TestPostRepository_ListPosts_LikeEscaping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.CreatePost(ctx, db, newTestPost("折扣 100% 活动", "内容", "zero")))
	require.NoError(t, repo.CreatePost(ctx, db, newTestPost("100分好评", "内容", "zero")))

	// "%" 是字面量，不是通配符：只命中真的包含 "100%" 的帖子。
	_, total, err := repo.ListPosts(ctx, 0, 10, "100%")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestPostRepository_UpdatePost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := newTestPost("修改前", "正文", "zero")
	post.Secret = "old-secret"
	require.NoError(t, repo.CreatePost(ctx, db, post))

	post.Title = "修改后"
	post.Content = "新的正文"
	post.Secret = "new-secret"
	require.NoError(t, repo.UpdatePost(ctx, db, post))

	got, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "修改后", got.Title)
	assert.Equal(t, "新的正文", got.Content)
	assert.Equal(t, "new-secret", got.Secret)

	missing := newTestPost("不存在的帖子", "正文", "zero")
	missing.ID = 9999
	assert.ErrorIs(t, repo.UpdatePost(ctx, db, missing), commonerrors.ErrRepoNotFound)
}

func TestPostRepository_DeletePost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := newTestPost("待删除的帖子", "正文", "zero")
	require.NoError(t, repo.CreatePost(ctx, db, post))

	require.NoError(t, repo.DeletePost(ctx, db, post.ID))

	_, err := repo.GetPostByID(ctx, post.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	// 重复删除幂等性不做承诺：第二次删除报告未找到。
	assert.ErrorIs(t, repo.DeletePost(ctx, db, post.ID), commonerrors.ErrRepoNotFound)

	count, err := repo.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPostRepository_GetPostSecret(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := newTestPost("加密帖子", "正文", "zero")
	post.Secret = "s3cret"
	require.NoError(t, repo.CreatePost(ctx, db, post))

	secret, err := repo.GetPostSecret(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", secret)

	_, err = repo.GetPostSecret(ctx, 777)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestAttachmentRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	logger := newTestLogger(t)
	postRepo := NewPostRepository(db, logger)
	attachRepo := NewAttachmentRepository(db, logger)
	ctx := context.Background()

	post := newTestPost("附件测试", "正文", "zero")
	require.NoError(t, postRepo.CreatePost(ctx, db, post))

	attachments := []*entities.Attachment{
		{PostID: post.ID, OriginalName: "b.png", StoredName: "uuid-b.png", FileURL: "https://cdn.example.com/uuid-b.png", MediaType: "image/png", ByteSize: 2048, DisplayOrder: 1},
		{PostID: post.ID, OriginalName: "a.png", StoredName: "uuid-a.png", FileURL: "https://cdn.example.com/uuid-a.png", MediaType: "image/png", ByteSize: 1024, DisplayOrder: 0},
	}
	require.NoError(t, attachRepo.BatchCreateAttachments(ctx, db, attachments))

	got, err := attachRepo.GetAttachmentsByPostID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// 按 DisplayOrder 升序返回。
	assert.Equal(t, "a.png", got[0].OriginalName)
	assert.Equal(t, "b.png", got[1].OriginalName)

	// 详情查询预加载附件，顺序一致。
	detail, err := postRepo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, detail.Attachments, 2)
	assert.Equal(t, "a.png", detail.Attachments[0].OriginalName)

	require.NoError(t, attachRepo.DeleteAttachmentsByPostID(ctx, db, post.ID))
	got, err = attachRepo.GetAttachmentsByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	// 没有附件时再次删除不算错误。
	require.NoError(t, attachRepo.DeleteAttachmentsByPostID(ctx, db, post.ID))
}

func TestPostBatchRepository_GetPostsByIDs(t *testing.T) {
	db := setupTestDB(t)
	logger := newTestLogger(t)
	postRepo := NewPostRepository(db, logger)
	batchRepo := NewPostBatchRepository(db, logger)
	ctx := context.Background()

	var ids []uint64
	for i := 0; i < 3; i++ {
		p := newTestPost("帖子", "内容", "zero")
		require.NoError(t, postRepo.CreatePost(ctx, db, p))
		ids = append(ids, p.ID)
	}

	posts, err := batchRepo.GetPostsByIDs(ctx, append(ids, 9999))
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	posts, err = batchRepo.GetPostsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_BackendUnavailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// 底层连接断开：返回后端不可用分类，而不是裸驱动错误。
	err = repo.CreatePost(ctx, db, newTestPost("帖子", "内容", "zero"))
	assert.ErrorIs(t, err, myErrors.ErrBackendUnavailable)

	_, err = repo.GetPostByID(ctx, 1)
	assert.ErrorIs(t, err, myErrors.ErrBackendUnavailable)

	_, _, err = repo.ListPosts(ctx, 0, 10, "")
	assert.ErrorIs(t, err, myErrors.ErrBackendUnavailable)
}
