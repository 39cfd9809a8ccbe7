package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/middleware"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/service"
)

// ReviewController 定义 AI 内容审核与发布的控制器。
// 审核队列与裁定操作对医生及以上角色开放，发布与注入只对管理员开放。
type ReviewController struct {
	reviewService service.ReviewService
	postService   service.PostService
}

// NewReviewController 构造函数，用于创建 ReviewController 实例
func NewReviewController(reviewService service.ReviewService, postService service.PostService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		postService:   postService,
	}
}

// ListPending 获取待审核队列
// @Summary      获取待审核队列
// @Description  获取 AI 生成且尚未裁定的帖子列表，按提交时间先进先审。
// @Tags         review (审核)
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "成功响应，包含待审核帖子"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/review/pending [get]
func (ctrl *ReviewController) ListPending(c *gin.Context) {
	posts, err := ctrl.reviewService.ListPending(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取待审核队列失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, posts, "待审核队列获取成功")
}

// ListUnpublished 获取未发布的 AI 帖子
// @Summary      获取未发布的 AI 帖子
// @Description  获取已生成但发布开关仍关闭的 AI 帖子列表，供运营发布页使用。
// @Tags         review (审核)
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "成功响应"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/review/unpublished [get]
func (ctrl *ReviewController) ListUnpublished(c *gin.Context) {
	posts, err := ctrl.reviewService.ListUnpublished(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取未发布帖子失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, posts, "未发布帖子获取成功")
}

// ValidatePost 写入审核裁定
// @Summary      审核帖子
// @Description  写入审核裁定（1=validated，2=rejected）。裁定不改变发布状态；重复裁定以最后一次为准。
// @Tags         review (审核)
// @Accept       json
// @Produce      json
// @Param        post_id path int true "帖子 ID"
// @Param        request body dto.ValidatePostRequest true "裁定值"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含裁定后的帖子"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的裁定值"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/review/posts/{post_id}/validate [post]
func (ctrl *ReviewController) ValidatePost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req dto.ValidatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity, idOK := middleware.CurrentIdentity(c)
	if !idOK {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	post, err := ctrl.reviewService.Validate(c.Request.Context(), postID, req.Status, identity.UserName)
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "审核的帖子未找到")
		case errors.Is(err, myErrors.ErrInvalidValidationStatus):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "裁定值非法")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "审核帖子失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, post, "帖子审核完成")
}

// PublishPost 打开发布开关
// @Summary      发布帖子
// @Description  将帖子置为已发布。对裁定结果没有前置条件，是否先审后发由运营流程约束。
// @Tags         review (审核)
// @Produce      json
// @Param        post_id path int true "帖子 ID"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含发布后的帖子"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/review/posts/{post_id}/publish [post]
func (ctrl *ReviewController) PublishPost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := ctrl.reviewService.Publish(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "发布帖子失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, post, "帖子发布成功")
}

// CreateAIPost 直接注入一条 AI 帖子
// @Summary      注入 AI 帖子
// @Description  以 AI 署名直接创建一条待审核帖子，与定时任务走同一条创建路径。
// @Tags         review (审核)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAIPostRequest true "帖子内容"
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含创建的帖子"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求体"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/review/posts [post]
func (ctrl *ReviewController) CreateAIPost(c *gin.Context) {
	var req dto.CreateAIPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	post, err := ctrl.postService.CreateAIPost(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "注入 AI 帖子失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, post, "AI 帖子已进入待审核队列")
}

// RegisterRoutes 注册 ReviewController 的路由
func (ctrl *ReviewController) RegisterRoutes(group *gin.RouterGroup) {
	reviewerOnly := middleware.RequireRoles(enums.RoleDoctor, enums.RoleAdmin, enums.RoleSuperAdmin)
	adminOnly := middleware.RequireRoles(enums.RoleAdmin, enums.RoleSuperAdmin)

	review := group.Group("/review")
	{
		review.GET("/pending", reviewerOnly, ctrl.ListPending)
		review.POST("/posts/:post_id/validate", reviewerOnly, ctrl.ValidatePost)
		review.GET("/unpublished", adminOnly, ctrl.ListUnpublished)
		review.POST("/posts/:post_id/publish", adminOnly, ctrl.PublishPost)
		review.POST("/posts", adminOnly, ctrl.CreateAIPost)
	}
}
