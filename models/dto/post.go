package dto

// CreatePostRequest 定义了创建帖子的请求数据结构
// - binding 标签做第一道格式校验；字段长度的业务策略校验在服务层
//   按 config.BoardPolicyConfig 再执行一次，并产出字段级错误详情。
type CreatePostRequest struct {
	Title   string `json:"title" form:"title" binding:"required,max=100"`      // 帖子标题，必填，最大100字符
	Content string `json:"content" form:"content" binding:"required,max=5000"` // 帖子正文，必填，最大5000字符
	Author  string `json:"author" form:"author" binding:"required,max=50"`     // 作者名，必填，最大50字符

	// Secret 帖子口令，可选。设置后，修改/删除该帖需携带相同口令。
	// 注意：这是请求入参，任何响应都不会回带该字段。
	Secret string `json:"secret" form:"secret" binding:"omitempty,max=255"`
}

// UpdatePostRequest 定义了修改帖子的请求数据结构
// - 全量替换语义：title/content/author 三个字段必填并整体覆盖。
// - 附件文件走 multipart 的 "files" 字段；未携带文件时附件保持不动。
type UpdatePostRequest struct {
	Title   string `json:"title" form:"title" binding:"required,max=100"`
	Content string `json:"content" form:"content" binding:"required,max=5000"`
	Author  string `json:"author" form:"author" binding:"required,max=50"`

	// Secret 新口令，可选。留空表示保留帖子现有口令（从不清空）。
	Secret string `json:"secret" form:"secret" binding:"omitempty,max=255"`

	// AccessSecret 调用方为通过口令闸门而提供的现有口令。
	// 口令闸门关闭的部署下忽略该字段。
	AccessSecret string `json:"access_secret" form:"access_secret" binding:"omitempty,max=255"`
}

// DeletePostRequest 定义了删除帖子时随请求体携带的口令。
type DeletePostRequest struct {
	AccessSecret string `json:"access_secret" form:"access_secret" binding:"omitempty,max=255"`
}

// VerifySecretRequest 定义了口令预校验的请求数据结构。
// 用于编辑表单提交前的轻量检查，不产生任何副作用。
type VerifySecretRequest struct {
	Secret string `json:"secret" form:"secret" binding:"omitempty,max=255"`
}
