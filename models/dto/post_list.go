package dto

// ListPostsRequestDTO 定义了帖子列表查询的API请求参数。
// - 用于控制器层接收和验证来自客户端的HTTP请求。
// - 页码与每页数量允许缺省：缺省值与上限由服务层按策略收敛，
//   越界值收敛而不是报错（分页参数对用户永远是可宽恕的）。
type ListPostsRequestDTO struct {
	// Page 页码，从 1 开始。缺省为 1。
	Page int `form:"page" binding:"omitempty,gte=1"`

	// PageSize 每页数量。缺省与上限见 config.BoardPolicyConfig。
	PageSize int `form:"pageSize" binding:"omitempty,gte=1,lte=100"`

	// Keyword 关键字，可选。对标题/正文/作者做大小写不敏感的子串匹配。
	// 只做包含匹配，不做分词或相关度排序。
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
}

// GetPage 返回收敛后的页码（缺省为 1）。
func (dto *ListPostsRequestDTO) GetPage() int {
	if dto.Page <= 0 {
		return 1
	}
	return dto.Page
}

// GetPageSize 按默认值与上限收敛每页数量。
func (dto *ListPostsRequestDTO) GetPageSize(defaultSize, maxSize int) int {
	size := dto.PageSize
	if size <= 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return size
}
