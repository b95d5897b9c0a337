package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/service"
)

// HotBoardController 定义热门帖子榜单控制器的结构体
type HotBoardController struct {
	hotBoardService service.HotBoardService // 服务层接口
}

// NewHotBoardController 构造函数，注入服务层依赖
func NewHotBoardController(hotBoardService service.HotBoardService) *HotBoardController {
	return &HotBoardController{
		hotBoardService: hotBoardService,
	}
}

// GetHotPosts 处理获取热门帖子榜单的 HTTP 请求
// @Summary      获取热门帖子榜单
// @Description  获取按热度降序排列的帖子摘要榜单。榜单由后台任务定期刷新，是刷新时刻的快照；快照尚未生成时返回空榜。
// @Tags         hot-board (热门榜单)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.HotPostsResponseWrapper "热门榜单检索成功"
// @Failure      500 {object} vo.BaseResponseWrapper "检索热门榜单时发生内部服务器错误"
// @Router       /api/v1/board/hot-posts [get]
func (ctrl *HotBoardController) GetHotPosts(c *gin.Context) {
	posts, err := ctrl.hotBoardService.GetHotPosts(c.Request.Context())
	if err != nil {
		if errors.Is(err, myErrors.ErrBackendUnavailable) {
			response.RespondError(c, http.StatusServiceUnavailable, response.ErrCodeServerInternal, "检索热门榜单失败: 后端依赖暂不可用")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索热门榜单失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, posts, "热门榜单检索成功")
}

// GetPostRank 处理查询帖子热榜名次的 HTTP 请求
// @Summary      查询帖子在热榜中的名次
// @Description  返回指定帖子在热榜快照中的名次（0 表示榜首）；不在榜时返回 -1。
// @Tags         hot-board (热门榜单)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "名次查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      500 {object} vo.BaseResponseWrapper "查询名次时发生内部服务器错误"
// @Router       /api/v1/board/hot-posts/{post_id}/rank [get]
func (ctrl *HotBoardController) GetPostRank(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	rank, err := ctrl.hotBoardService.GetPostRank(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, myErrors.ErrBackendUnavailable) {
			response.RespondError(c, http.StatusServiceUnavailable, response.ErrCodeServerInternal, "查询帖子名次失败: 后端依赖暂不可用")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "查询帖子名次失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, gin.H{"post_id": postID, "rank": rank}, "名次查询成功")
}

// RegisterRoutes 注册 HotBoardController 的路由
func (ctrl *HotBoardController) RegisterRoutes(group *gin.RouterGroup) {
	hotPosts := group.Group("/hot-posts")
	{
		hotPosts.GET("", ctrl.GetHotPosts)
		hotPosts.GET("/:post_id/rank", ctrl.GetPostRank)
	}
}
