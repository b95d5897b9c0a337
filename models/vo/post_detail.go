package vo

import (
	"time"

	"github.com/Xushengqwer/board_service/models/entities"
)

// PostDetailVO 定义了帖子详情页的完整视图对象。
// 包含正文与附件元数据列表；口令字段被显式投影排除，永不出现在这里。
type PostDetailVO struct {
	ID        uint64    `json:"id"`         // 帖子ID
	Title     string    `json:"title"`      // 帖子标题
	Content   string    `json:"content"`    // 帖子正文
	Author    string    `json:"author"`     // 作者名
	ViewCount int64     `json:"view_count"` // 浏览量（详情读取返回自增后的值）
	CreatedAt time.Time `json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"` // 更新时间

	// Attachments 附件元数据列表，已按 DisplayOrder 排序。
	Attachments []AttachmentVO `json:"attachments"`
}

// AttachmentVO 定义了单个附件元数据的视图对象。
type AttachmentVO struct {
	OriginalName string `json:"original_name"` // 原始文件名（展示用）
	StoredName   string `json:"stored_name"`   // 系统生成的存储文件名
	FileURL      string `json:"file_url"`      // 公开访问 URL
	MediaType    string `json:"media_type"`    // 媒体类型
	ByteSize     int64  `json:"byte_size"`     // 文件大小（字节）
	DisplayOrder int    `json:"display_order"` // 展示顺序
}

// NewAttachmentVOFromEntity 将单个附件实体转换为 AttachmentVO。
func NewAttachmentVOFromEntity(entity *entities.Attachment) AttachmentVO {
	if entity == nil {
		return AttachmentVO{}
	}
	return AttachmentVO{
		OriginalName: entity.OriginalName,
		StoredName:   entity.StoredName,
		FileURL:      entity.FileURL,
		MediaType:    entity.MediaType,
		ByteSize:     entity.ByteSize,
		DisplayOrder: entity.DisplayOrder,
	}
}

// NewAttachmentVOsFromEntities 将附件实体切片转换为 AttachmentVO 切片。
// 返回空的非 nil 切片，JSON 序列化为 [] 而不是 null。
func NewAttachmentVOsFromEntities(list []entities.Attachment) []AttachmentVO {
	vos := make([]AttachmentVO, 0, len(list))
	for i := range list {
		vos = append(vos, NewAttachmentVOFromEntity(&list[i]))
	}
	return vos
}

// NewPostDetailVOFromEntity 将帖子实体（含附件）转换为详情VO。
// 这是口令字段的统一投影点：实体任何读路径出站都必须经过这里。
func NewPostDetailVOFromEntity(post *entities.Post) *PostDetailVO {
	if post == nil {
		return nil
	}
	return &PostDetailVO{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		Author:      post.Author,
		ViewCount:   post.ViewCount,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
		Attachments: NewAttachmentVOsFromEntities(post.Attachments),
	}
}
