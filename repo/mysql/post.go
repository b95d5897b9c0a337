package mysql

import (
	"context"
	"errors"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - 这是帖子生命周期的起点，对应用户发布帖子的操作。
	// - db 参数允许调用方传入事务对象，与附件写入保持原子。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据单个 ID 检索帖子信息（含附件，按展示顺序排列）。
	// - 纯读取，不触碰浏览量。
	// - 如果未找到帖子，返回 commonerrors.ErrRepoNotFound 错误。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// IncrementViewAndGet 原子地将浏览量加一并返回自增后的完整帖子。
	// - 自增与读取在同一事务内完成，行锁保证并发读取各自拿到不同的浏览量值。
	// - 帖子不存在时返回 commonerrors.ErrRepoNotFound，不会产生任何写入。
	IncrementViewAndGet(ctx context.Context, id uint64) (*entities.Post, error)

	// ListPosts 按创建时间倒序分页查询帖子摘要列表。
	// - keyword 非空时对标题、正文、作者做大小写不敏感的子串匹配。
	// - 返回的实体不含正文与口令（摘要投影），但预加载附件用于计数。
	// - 返回符合条件的总记录数，供分页窗口计算使用。
	ListPosts(ctx context.Context, offset, limit int, keyword string) ([]*entities.Post, int64, error)

	// UpdatePost 保存帖子的全量可变字段（标题、正文、作者、口令）。
	// - 字段级校验与口令合并由服务层完成，仓库层只负责落库。
	// - 未找到记录时返回 commonerrors.ErrRepoNotFound。
	UpdatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// DeletePost 对指定帖子执行软删除。
	// - 软删除通过 GORM 约定（填充 deleted_at 字段）实现，数据仍可追溯。
	// - 未找到记录时返回 commonerrors.ErrRepoNotFound。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error

	// GetPostSecret 只读取指定帖子的口令字段，用于访问校验。
	// - 避免为一次口令比较加载整行（尤其是正文）。
	GetPostSecret(ctx context.Context, id uint64) (string, error)

	// CountPosts 返回未删除帖子的总数。
	CountPosts(ctx context.Context) (int64, error)
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB        // GORM 数据库实例
	logger *core.ZapLogger // 日志记录器实例
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// summaryColumns 是列表查询的投影列：排除正文与口令，摘要场景不需要它们。
var summaryColumns = []string{"id", "title", "author", "view_count", "created_at", "updated_at"}

// CreatePost 实现帖子的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	// 使用传入的 db 对象（可能是事务对象 tx）执行数据库操作。
	// GORM 会自动处理 BaseModel 中的 CreatedAt 和 UpdatedAt 字段。
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		// 非 NotFound 的数据库错误统一归入后端不可用分类，控制器据此返回 503。
		return myErrors.WrapBackend(err)
	}
	return nil
}

// GetPostByID 按主键检索帖子，附件按展示顺序预加载。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按ID查询帖子失败", zap.Error(err), zap.Uint64("postID", id))
		return nil, myErrors.WrapBackend(err)
	}
	return &post, nil
}

// IncrementViewAndGet 在单个事务内自增浏览量并读回整行。
// UPDATE 持有的行锁直到提交才释放，因此并发调用被串行化，
// 每个调用读到的 view_count 都是自己那次自增后的唯一值。
func (r *postRepository) IncrementViewAndGet(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Post{}).
			Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		// UPDATE 影响 0 行说明帖子不存在或已被软删除，事务内无任何写入发生。
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}

		return tx.Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).First(&post, id).Error
	})

	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("自增浏览量并读取帖子失败", zap.Error(err), zap.Uint64("postID", id))
		return nil, myErrors.WrapBackend(err)
	}
	return &post, nil
}

// ListPosts 实现关键字过滤 + 偏移分页的摘要查询。
func (r *postRepository) ListPosts(ctx context.Context, offset, limit int, keyword string) ([]*entities.Post, int64, error) {
	var posts []*entities.Post
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Post{})

	if trimmed := strings.TrimSpace(keyword); trimmed != "" {
		// LOWER + LIKE 做大小写不敏感匹配；LIKE 特殊字符按字面量转义，
		// 关键字 "100%" 只命中真的包含 "100%" 的帖子。
		pattern := "%" + escapeLike(strings.ToLower(trimmed)) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(content) LIKE ? ESCAPE '\\' OR LOWER(author) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}

	// 先数总数，再取当前页。同一过滤条件复用同一个 query 构建器。
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计帖子总数失败", zap.Error(err), zap.String("keyword", keyword))
		return nil, 0, myErrors.WrapBackend(err)
	}

	err := query.
		Select(summaryColumns).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			// 摘要只需要附件数量，投影到最小列集。
			return db.Select("id", "post_id", "display_order")
		}).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		r.logger.Error("分页查询帖子列表失败", zap.Error(err),
			zap.Int("offset", offset), zap.Int("limit", limit), zap.String("keyword", keyword))
		return nil, 0, myErrors.WrapBackend(err)
	}

	return posts, total, nil
}

// UpdatePost 全量保存帖子的可变字段，总是刷新 updated_at。
func (r *postRepository) UpdatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	updateMap := map[string]interface{}{
		"title":   post.Title,
		"content": post.Content,
		"author":  post.Author,
		"secret":  post.Secret,
	}

	result := db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", post.ID).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新帖子数据库操作失败", zap.Error(result.Error), zap.Uint64("postID", post.ID))
		return myErrors.WrapBackend(result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新帖子但未找到记录或记录已被删除", zap.Uint64("postID", post.ID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeletePost 实现帖子的软删除。
func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		r.logger.Error("删除帖子数据库操作失败", zap.Error(result.Error), zap.Uint64("postID", id))
		return myErrors.WrapBackend(result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试删除帖子但未找到记录", zap.Uint64("postID", id))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// GetPostSecret 只取口令列，帖子不存在时返回 commonerrors.ErrRepoNotFound。
func (r *postRepository) GetPostSecret(ctx context.Context, id uint64) (string, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).
		Select("id", "secret").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询帖子口令失败", zap.Error(err), zap.Uint64("postID", id))
		return "", myErrors.WrapBackend(err)
	}
	return post.Secret, nil
}

// CountPosts 统计未删除的帖子总数。
func (r *postRepository) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Post{}).Count(&count).Error; err != nil {
		r.logger.Error("统计帖子总数失败", zap.Error(err))
		return 0, myErrors.WrapBackend(err)
	}
	return count, nil
}

// escapeLike 将 LIKE 模式中的特殊字符转义为字面量。
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
