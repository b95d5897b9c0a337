package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// AttachmentRepository 定义了附件元数据在 MySQL 中的持久化操作接口。
// 附件记录永远从属于某个帖子，写操作都发生在帖子事务内。
type AttachmentRepository interface {
	// BatchCreateAttachments 批量插入一批附件元数据记录。
	// - 调用方负责在每条记录上填好 PostID 与 DisplayOrder。
	// - 空切片直接返回 nil，不产生数据库往返。
	BatchCreateAttachments(ctx context.Context, db *gorm.DB, attachments []*entities.Attachment) error

	// DeleteAttachmentsByPostID 删除指定帖子下的全部附件记录。
	// - 用于整体替换（先删后插）和帖子删除两个场景。
	// - 没有附件可删不算错误。
	DeleteAttachmentsByPostID(ctx context.Context, db *gorm.DB, postID uint64) error

	// GetAttachmentsByPostID 查询指定帖子的附件列表，按展示顺序排列。
	GetAttachmentsByPostID(ctx context.Context, postID uint64) ([]entities.Attachment, error)
}

// attachmentRepository 是 AttachmentRepository 接口针对 MySQL 的具体实现。
type attachmentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewAttachmentRepository 是 attachmentRepository 的构造函数。
func NewAttachmentRepository(db *gorm.DB, logger *core.ZapLogger) AttachmentRepository {
	return &attachmentRepository{
		db:     db,
		logger: logger,
	}
}

// BatchCreateAttachments 实现附件元数据的批量插入。
func (r *attachmentRepository) BatchCreateAttachments(ctx context.Context, db *gorm.DB, attachments []*entities.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(&attachments).Error; err != nil {
		r.logger.Error("批量插入附件元数据失败", zap.Error(err), zap.Int("count", len(attachments)))
		return myErrors.WrapBackend(err)
	}
	return nil
}

// DeleteAttachmentsByPostID 实现按帖子ID批量删除附件记录。
func (r *attachmentRepository) DeleteAttachmentsByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	result := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.Attachment{})
	if result.Error != nil {
		r.logger.Error("删除帖子附件记录失败", zap.Error(result.Error), zap.Uint64("postID", postID))
		return myErrors.WrapBackend(result.Error)
	}
	return nil
}

// GetAttachmentsByPostID 实现按帖子ID查询附件列表。
func (r *attachmentRepository) GetAttachmentsByPostID(ctx context.Context, postID uint64) ([]entities.Attachment, error) {
	var attachments []entities.Attachment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("display_order ASC, id ASC").
		Find(&attachments).Error
	if err != nil {
		r.logger.Error("查询帖子附件列表失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, myErrors.WrapBackend(err)
	}
	return attachments, nil
}
