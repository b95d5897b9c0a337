package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Post 帖子实体
// - 使用场景: 留言板帖子的权威存储，标题、正文、作者、口令、浏览量与附件元数据都挂在这一张表上
// - 表名: posts (GORM 默认使用结构体名复数形式)
type Post struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，策略上限 100 字符 (constant.TitleMaxLen)
	// - 类型: varchar(255)，数据库列宽放宽到 255，业务长度校验在服务层按策略执行
	Title string `gorm:"type:varchar(255);not null"`

	// 正文，必填，策略上限 5000 字符
	// - 类型: text，支持多行文本，保留换行符
	Content string `gorm:"type:text;not null"`

	// 作者名，必填，策略上限 50 字符
	// - 无用户体系，作者名是发帖人自报的展示名，不关联任何账号
	Author string `gorm:"type:varchar(50);not null"`

	// 口令，可选，帖子级共享凭证
	// - 明文存储、精确匹配（比较时使用常数时间比较，见 guard 包）
	// - 任何读路径都不得对外返回该字段：JSON 投影用 json:"-" 兜底，
	//   VO 转换时也不携带。列表查询的 SELECT 显式排除该列。
	Secret string `gorm:"type:varchar(255)" json:"-"`

	// 浏览量，单调不减，只通过详情读取的原子自增操作变化
	// - 权威计数在这里；Redis 排行榜只是派生数据
	ViewCount int64 `gorm:"type:bigint;default:0"`

	// 附件元数据列表，归属于本帖子
	// - 一对多关系，删帖级联删除附件记录
	// - 更新帖子时若携带了新文件则整组替换，未携带则保持不动（从不合并）
	Attachments []Attachment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
