package vo

import (
	"time"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/pagination"
)

// PostSummaryResponse 定义了帖子摘要（列表项）的响应数据结构。
// 摘要刻意不包含正文，口令字段在任何读路径上都不输出。
type PostSummaryResponse struct {
	ID              uint64    `json:"id"`               // 帖子ID
	Title           string    `json:"title"`            // 帖子标题
	Author          string    `json:"author"`           // 作者名
	ViewCount       int64     `json:"view_count"`       // 浏览量
	AttachmentCount int       `json:"attachment_count"` // 附件数量
	CreatedAt       time.Time `json:"created_at"`       // 创建时间
	UpdatedAt       time.Time `json:"updated_at"`       // 更新时间
}

// PostListPageVO 定义了帖子列表分页查询的响应结构。
// - 包含当前页的帖子摘要与完整的分页窗口（页码导航条数据）。
type PostListPageVO struct {
	Posts      []*PostSummaryResponse `json:"posts"`      // 当前页的帖子摘要列表
	Pagination pagination.Window      `json:"pagination"` // 分页窗口
}

// VerifySecretVO 定义了口令预校验的响应结构。
// 帖子不存在与口令不匹配都表现为 authorized=false，不区分两者。
type VerifySecretVO struct {
	Authorized bool `json:"authorized"`
}

// MapPostsToSummariesVO 将帖子实体列表转换为摘要响应VO列表。
// 返回空切片而不是 nil，便于前端处理。
func MapPostsToSummariesVO(posts []*entities.Post) []*PostSummaryResponse {
	if len(posts) == 0 {
		return []*PostSummaryResponse{}
	}

	responses := make([]*PostSummaryResponse, 0, len(posts))
	for _, post := range posts {
		if post == nil { // 安全检查
			continue
		}
		responses = append(responses, &PostSummaryResponse{
			ID:              post.ID,
			Title:           post.Title,
			Author:          post.Author,
			ViewCount:       post.ViewCount,
			AttachmentCount: len(post.Attachments),
			CreatedAt:       post.CreatedAt,
			UpdatedAt:       post.UpdatedAt,
		})
	}
	return responses
}
