package controller

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService     service.PostService // 服务层接口，通过依赖注入传入
	postListService service.PostListService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService, postListService service.PostListService) *PostController {
	return &PostController{
		postService:     postService,
		postListService: postListService,
	}
}

// parsePostID 从路径参数解析帖子 ID。
// 非数字 ID 是格式错误（400），与数字 ID 但不存在的帖子（404）是两种不同的失败。
func parsePostID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondServiceError(c, myErrors.ErrInvalidPostID, "解析帖子 ID")
		return 0, false
	}
	return id, true
}

// respondServiceError 把服务层错误翻译成统一的 HTTP 响应。
func respondServiceError(c *gin.Context, err error, action string) {
	var vErr *myErrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, vErr.Error())
	case errors.Is(err, myErrors.ErrInvalidPostID):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子未找到")
	case errors.Is(err, myErrors.ErrUnauthorized):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "口令校验未通过")
	case errors.Is(err, myErrors.ErrBackendUnavailable):
		response.RespondError(c, http.StatusServiceUnavailable, response.ErrCodeServerInternal, action+"失败: 后端依赖暂不可用")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+"失败: "+err.Error())
	}
}

// ListPosts 获取帖子列表 (分页 + 关键字搜索)
// @Summary      获取帖子列表
// @Description  按创建时间倒序分页获取帖子摘要列表，可选关键字对标题/正文/作者做模糊匹配。响应附带完整的分页导航数据。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        pageSize query int false "每页数量" format(int32) minimum(1) maximum(100) default(10)
// @Param        keyword query string false "搜索关键词 (匹配标题/正文/作者)" maxLength(100)
// @Success      200 {object} vo.PostListPageResponseWrapper "成功响应，包含帖子摘要列表与分页窗口"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var reqDTO dto.ListPostsRequestDTO
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.postListService.ListPosts(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取帖子列表")
		return
	}
	response.RespondSuccess(c, pageVO, "帖子列表获取成功")
}

// CreatePost 处理创建帖子的 HTTP 请求，包含附件上传。
// @Summary      创建新帖子 (表单字段及附件)
// @Description  使用提供的字段与附件文件创建一个新帖子。请求体应为 multipart/form-data；附件走 "files" 字段，可多选。
// @Tags         posts (帖子)
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "帖子标题" maxLength(100)
// @Param        content formData string true "帖子正文" maxLength(5000)
// @Param        author formData string true "作者名" maxLength(50)
// @Param        secret formData string false "帖子口令 (设置后修改/删除需携带)" maxLength(255)
// @Param        files formData file false "附件文件 (可多选)"
// @Success      200 {object} vo.PostDetailResponseWrapper "帖子创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或字段校验失败"
// @Failure      500 {object} vo.BaseResponseWrapper "创建帖子时发生内部服务器错误"
// @Router       /api/v1/board/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	// 附件是可选的；非 multipart 请求（纯 JSON）没有表单，直接按无附件处理。
	files := formFiles(c, "files")

	detailVO, err := ctrl.postService.CreatePost(c.Request.Context(), &req, files)
	if err != nil {
		respondServiceError(c, err, "创建帖子")
		return
	}
	response.RespondSuccess(c, detailVO, "帖子创建成功")
}

// GetPostDetail 处理获取帖子详情的 HTTP 请求
// @Summary      获取帖子详情
// @Description  获取指定帖子的完整内容与附件列表。每次成功读取会将浏览量加一，响应中的 view_count 即加一后的值。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.PostDetailResponseWrapper "帖子详情获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{id} [get]
func (ctrl *PostController) GetPostDetail(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	detailVO, err := ctrl.postService.GetPostDetail(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取帖子详情")
		return
	}
	response.RespondSuccess(c, detailVO, "帖子详情获取成功")
}

// UpdatePost 处理修改帖子的 HTTP 请求
// @Summary      修改指定ID的帖子
// @Description  全量替换帖子的标题/正文/作者。口令闸门开启时需在 access_secret 中携带现有口令。携带 "files" 附件时整体替换附件，不携带时附件保持不动。
// @Tags         posts (帖子)
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path uint64 true "帖子 ID" Format(uint64)
// @Param        title formData string true "帖子标题" maxLength(100)
// @Param        content formData string true "帖子正文" maxLength(5000)
// @Param        author formData string true "作者名" maxLength(50)
// @Param        secret formData string false "新口令 (留空保留原口令)" maxLength(255)
// @Param        access_secret formData string false "现有口令 (口令闸门开启时必需)" maxLength(255)
// @Param        files formData file false "新附件文件 (可多选，整体替换)"
// @Success      200 {object} vo.PostDetailResponseWrapper "帖子修改成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或字段校验失败"
// @Failure      403 {object} vo.BaseResponseWrapper "口令校验未通过"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	files := formFiles(c, "files")

	detailVO, err := ctrl.postService.UpdatePost(c.Request.Context(), id, &req, files)
	if err != nil {
		respondServiceError(c, err, "修改帖子")
		return
	}
	response.RespondSuccess(c, detailVO, "帖子修改成功")
}

// DeletePost 处理删除帖子的 HTTP 请求
// @Summary      删除指定ID的帖子
// @Description  软删除帖子并清理其全部附件。口令闸门开启时需在请求体的 access_secret 中携带现有口令。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子 ID" Format(uint64)
// @Param        body body dto.DeletePostRequest false "口令载荷 (闸门开启时必需)"
// @Success      200 {object} vo.BaseResponseWrapper "帖子删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      403 {object} vo.BaseResponseWrapper "口令校验未通过"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	// 请求体是可选的（闸门关闭时可以不带）。
	var req dto.DeletePostRequest
	_ = c.ShouldBind(&req)

	if err := ctrl.postService.DeletePost(c.Request.Context(), id, &req); err != nil {
		respondServiceError(c, err, "删除帖子")
		return
	}
	response.RespondSuccess[any](c, nil, "帖子删除成功")
}

// VerifySecret 处理口令预校验的 HTTP 请求
// @Summary      预校验帖子口令
// @Description  无副作用地校验口令能否通过指定帖子的口令闸门，供编辑表单提交前探测。帖子不存在与口令不匹配统一返回未授权。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子 ID" Format(uint64)
// @Param        body body dto.VerifySecretRequest true "待校验的口令"
// @Success      200 {object} vo.VerifySecretResponseWrapper "校验完成，结果见 authorized 字段"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{id}/verify-secret [post]
func (ctrl *PostController) VerifySecret(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	var req dto.VerifySecretRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	result, err := ctrl.postService.VerifySecret(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err, "校验口令")
		return
	}
	response.RespondSuccess(c, result, "口令校验完成")
}

// formFiles 取 multipart 表单中指定字段的文件列表，非 multipart 请求返回 nil。
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.GET("", ctrl.ListPosts)
		posts.POST("", ctrl.CreatePost)
		posts.GET("/:id", ctrl.GetPostDetail)
		posts.PUT("/:id", ctrl.UpdatePost)
		posts.DELETE("/:id", ctrl.DeletePost)
		posts.POST("/:id/verify-secret", ctrl.VerifySecret)
	}
}
