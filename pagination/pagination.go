package pagination

// Window 描述一次列表查询的分页窗口，是纯派生数据，不落库。
// 字段足够前端渲染一条"上一页 [1 2 3 ... 10] 下一页"式的页码导航条。
type Window struct {
	Page       int   `json:"page"`       // 当前页码 (≥1，越界会被收敛)
	PageSize   int   `json:"pageSize"`   // 每页数量
	TotalCount int64 `json:"totalCount"` // 符合过滤条件的总记录数
	TotalPages int   `json:"totalPages"` // 总页数 = max(1, ceil(total/pageSize))

	// Pages 当前页所在页码块内的可导航页码，块宽由 blockSize 决定。
	// 例如 blockSize=10、当前页 13 时为 [11..20]（按总页数截断）。
	Pages []int `json:"pages"`

	HasPrevPage bool `json:"hasPrevPage"` // 当前页 > 1
	HasNextPage bool `json:"hasNextPage"` // 当前页 < 总页数
}

// PrevPage 返回上一页页码；没有上一页时返回当前页。
func (w Window) PrevPage() int {
	if w.HasPrevPage {
		return w.Page - 1
	}
	return w.Page
}

// NextPage 返回下一页页码；没有下一页时返回当前页。
func (w Window) NextPage() int {
	if w.HasNextPage {
		return w.Page + 1
	}
	return w.Page
}

// ComputeWindow 计算分页窗口。纯函数，无 I/O，不会失败：
// 非法输入（pageSize/blockSize < 1、页码越界）一律收敛而不是报错。
//   - totalPages = max(1, ceil(totalCount/pageSize))，总页数永远不为 0，
//     空列表也渲染出"第 1 页 / 共 1 页"。
//   - requestedPage 收敛到 [1, totalPages]。
//   - 页码块取包含当前页的那一段: blockStart = floor((page-1)/blockSize)*blockSize + 1。
func ComputeWindow(totalCount int64, requestedPage, pageSize, blockSize int) Window {
	if pageSize < 1 {
		pageSize = 1
	}
	if blockSize < 1 {
		blockSize = 1
	}
	if totalCount < 0 {
		totalCount = 0
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	blockStart := (page-1)/blockSize*blockSize + 1
	blockEnd := blockStart + blockSize - 1
	if blockEnd > totalPages {
		blockEnd = totalPages
	}
	pages := make([]int, 0, blockEnd-blockStart+1)
	for p := blockStart; p <= blockEnd; p++ {
		pages = append(pages, p)
	}

	return Window{
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		Pages:       pages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
	}
}

// Offset 返回窗口对应的数据库偏移量 (page-1)*pageSize。
func (w Window) Offset() int {
	return (w.Page - 1) * w.PageSize
}
