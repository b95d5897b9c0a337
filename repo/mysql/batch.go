package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// PostBatchRepository 定义了面向缓存回填场景的批量查询接口。
// 热榜刷新任务用它把 Redis 排行榜上的 ID 一次性换成帖子摘要。
type PostBatchRepository interface {
	// GetPostsByIDs 根据 ID 列表批量检索帖子摘要信息。
	// - 使用 "WHERE id IN (...)" 单次查询，投影排除正文与口令。
	// - 结果顺序不保证与入参一致，调用方按需自行排序。
	// - 已删除或不存在的 ID 被静默跳过。
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error)
}

type postBatchRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostBatchRepository 创建一个 PostBatchRepository 实例。
func NewPostBatchRepository(db *gorm.DB, logger *core.ZapLogger) PostBatchRepository {
	return &postBatchRepository{db: db, logger: logger}
}

// GetPostsByIDs 实现按 ID 集合的批量摘要查询。
func (r *postBatchRepository) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}

	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Select(summaryColumns).
		Where("id IN ?", ids).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "post_id", "display_order")
		}).
		Find(&posts).Error
	if err != nil {
		r.logger.Error("按ID列表批量查询帖子失败", zap.Error(err), zap.Int("idCount", len(ids)))
		return nil, myErrors.WrapBackend(err)
	}
	return posts, nil
}
