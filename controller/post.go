package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/middleware"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// parsePostID 解析路径参数中的帖子 ID。
func parsePostID(c *gin.Context) (uint64, bool) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return 0, false
	}
	return postID, true
}

// ListPosts 获取公开帖子列表
// @Summary      获取帖子列表
// @Description  获取已发布的帖子列表，按创建时间降序，支持按社区名称过滤，默认最多返回 50 条。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        community query string false "社区名称过滤" maxLength(100)
// @Param        limit query int false "返回条数上限" minimum(1) maximum(100) default(50)
// @Success      200 {object} vo.PostListResponseWrapper "成功响应，包含帖子列表"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	posts, err := ctrl.postService.ListPosts(c.Request.Context(), &query)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取帖子列表失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, posts, "帖子列表获取成功")
}

// GetPostByID 获取帖子详情
// @Summary      获取帖子详情
// @Description  获取单个帖子的完整快照，包含评论与反应。
// @Tags         posts (帖子)
// @Produce      json
// @Param        post_id path int true "帖子 ID"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含帖子详情"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的帖子 ID"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts/{post_id} [get]
func (ctrl *PostController) GetPostByID(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := ctrl.postService.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取帖子详情失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, post, "帖子详情获取成功")
}

// CreatePost 创建帖子
// @Summary      创建帖子
// @Description  以当前登录用户身份创建帖子。人类帖子创建即已审核且已发布；aiGenerated 为 true 时进入待审核队列且不发布。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "帖子内容"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含创建的帖子"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求体"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	post, err := ctrl.postService.CreatePost(c.Request.Context(), &req, identity.UserID, identity.UserName)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建帖子失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, post, "帖子创建成功")
}

// EditPost 编辑帖子
// @Summary      编辑帖子
// @Description  更新帖子的标题或正文（至少提供一个字段），记录编辑人，不改变审核与发布状态。仅限 Doctor/Admin/SuperAdmin。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path int true "帖子 ID"
// @Param        request body dto.EditPostRequest true "编辑内容"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含编辑后的帖子"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权编辑"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts/{post_id} [put]
func (ctrl *PostController) EditPost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req dto.EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity, idOK := middleware.CurrentIdentity(c)
	if !idOK {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	post, err := ctrl.postService.EditPost(c.Request.Context(), postID, &req, identity.UserName)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "编辑帖子失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, post, "帖子编辑成功")
}

// AddComment 追加评论
// @Summary      追加评论
// @Description  给帖子追加一条评论，响应计数加一，并向事件通道广播 post:comment。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path int true "帖子 ID"
// @Param        request body dto.CommentRequest true "评论内容"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含新评论"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts/{post_id}/comments [post]
func (ctrl *PostController) AddComment(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity, idOK := middleware.CurrentIdentity(c)
	if !idOK {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	comment, err := ctrl.postService.AddComment(c.Request.Context(), postID, &req, identity.UserID, identity.UserName)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "追加评论失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, comment, "评论追加成功")
}

// ToggleReaction 切换反应
// @Summary      切换反应
// @Description  切换当前用户对帖子的某类反应：未点则点上，已点则取消。返回切换后的完整反应集合。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path int true "帖子 ID"
// @Param        request body dto.ReactRequest true "反应类型"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含最新反应集合"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts/{post_id}/reactions [post]
func (ctrl *PostController) ToggleReaction(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req dto.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity, idOK := middleware.CurrentIdentity(c)
	if !idOK {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	reactions, err := ctrl.postService.ToggleReaction(c.Request.Context(), postID, &req, identity.UserID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "切换反应失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, reactions, "反应切换成功")
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	editorOnly := middleware.RequireRoles(enums.RoleDoctor, enums.RoleAdmin, enums.RoleSuperAdmin)

	posts := group.Group("/posts")
	{
		posts.GET("", ctrl.ListPosts)             // GET /api/v1/community/posts
		posts.GET("/:post_id", ctrl.GetPostByID)  // GET /api/v1/community/posts/:post_id
		posts.POST("", middleware.RequireIdentity(), ctrl.CreatePost)
		posts.PUT("/:post_id", editorOnly, ctrl.EditPost)
		posts.POST("/:post_id/comments", middleware.RequireIdentity(), ctrl.AddComment)
		posts.POST("/:post_id/reactions", middleware.RequireIdentity(), ctrl.ToggleReaction)
	}
}
