package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// PostDetailResponseWrapper 对应 response.APIResponse[vo.PostDetailVO]
type PostDetailResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    PostDetailVO `json:"data"` // 使用具体的 vo.PostDetailVO
}

// PostListPageResponseWrapper 对应 response.APIResponse[vo.PostListPageVO]
// 用于 ListPosts 接口的成功响应。
type PostListPageResponseWrapper struct {
	Code    int            `json:"code" example:"0"`                    // 响应码，0 表示成功
	Message string         `json:"message,omitempty" example:"success"` // 响应消息
	Data    PostListPageVO `json:"data"`                                // 实际的帖子列表分页数据
}

// HotPostsResponseWrapper 对应 response.APIResponse[[]vo.PostSummaryResponse]
// 用于热门榜单接口的成功响应。
type HotPostsResponseWrapper struct {
	Code    int                   `json:"code" example:"0"`
	Message string                `json:"message,omitempty" example:"success"`
	Data    []PostSummaryResponse `json:"data"`
}

// VerifySecretResponseWrapper 对应 response.APIResponse[vo.VerifySecretVO]
type VerifySecretResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    VerifySecretVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
