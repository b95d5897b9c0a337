package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Attachment 帖子附件元数据实体
//   - 使用场景: 记录帖子携带的每一个上传文件的元信息。文件内容本身
//     托管在外部对象存储 (COS)，本服务从不读写文件字节。
//   - 表名: attachments (GORM 默认使用蛇形复数形式)
//   - 关系: 与 Post 为"多对一"，通过 PostID 外键关联；附件只随帖子存在，
//     不提供独立的查询入口。
type Attachment struct {
	entities.BaseModel // 嵌入自定义的 BaseModel, 包含 ID, CreatedAt, UpdatedAt, DeletedAt

	// 归属帖子ID (外键，指向 posts 表的主键)
	// - index: 附件总是按帖子批量加载，为外键加索引
	PostID uint64 `gorm:"not null;index"`

	// 原始文件名，来自上传方，不可信，仅用于展示
	OriginalName string `gorm:"type:varchar(255);not null"`

	// 存储文件名，系统生成，抗碰撞 (uuid + 原始扩展名)
	StoredName string `gorm:"type:varchar(255);not null"`

	// 对象存储中的 ObjectKey，删除帖子时据此清理 COS 对象
	ObjectKey string `gorm:"type:varchar(255);not null;index"`

	// 公开访问 URL
	FileURL string `gorm:"type:varchar(1023);not null"`

	// 媒体类型，例如 "image/png"
	MediaType string `gorm:"type:varchar(100);not null"`

	// 文件大小（字节），非负
	ByteSize int64 `gorm:"not null;default:0"`

	// 附件展示顺序，按上传顺序编号 0, 1, 2...
	DisplayOrder int `gorm:"default:0;index"`
}
