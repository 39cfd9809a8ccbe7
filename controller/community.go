package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/middleware"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/service"
)

// CommunityController 定义社区资料与建社申请的控制器。
type CommunityController struct {
	communityService service.CommunityService
}

// NewCommunityController 构造函数，用于创建 CommunityController 实例
func NewCommunityController(communityService service.CommunityService) *CommunityController {
	return &CommunityController{
		communityService: communityService,
	}
}

// parseCommunityID 解析路径参数中的社区 ID。
func parseCommunityID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("community_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的社区 ID 格式")
		return 0, false
	}
	return id, true
}

// parseRequestID 解析路径参数中的申请 ID。
func parseRequestID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("request_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的申请 ID 格式")
		return 0, false
	}
	return id, true
}

// parseStatusQuery 解析查询参数中的申请状态，缺省为 pending。
func parseStatusQuery(c *gin.Context) (commonEnums.Status, bool) {
	statusStr := c.DefaultQuery("status", "0")
	statusInt, err := strconv.Atoi(statusStr)
	if err != nil || statusInt < int(commonEnums.Pending) || statusInt > int(commonEnums.Rejected) {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的状态参数 (0:待处理, 1:已批准, 2:已驳回)")
		return 0, false
	}
	return commonEnums.Status(statusInt), true
}

// ListCommunities 获取社区列表
// @Summary      获取社区列表
// @Description  获取全部社区的快照，按创建时间升序。
// @Tags         communities (社区)
// @Produce      json
// @Success      200 {object} vo.CommunityListResponseWrapper "成功响应，包含社区列表"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/communities [get]
func (ctrl *CommunityController) ListCommunities(c *gin.Context) {
	communities, err := ctrl.communityService.ListCommunities(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取社区列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, communities, "社区列表获取成功")
}

// GetCommunityByID 获取社区详情
// @Summary      获取社区详情
// @Tags         communities (社区)
// @Produce      json
// @Param        community_id path int true "社区 ID"
// @Success      200 {object} vo.CommunityResponseWrapper "成功响应，包含社区详情"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的社区 ID"
// @Failure      404 {object} vo.EmptyResponseWrapper "社区未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/communities/{community_id} [get]
func (ctrl *CommunityController) GetCommunityByID(c *gin.Context) {
	communityID, ok := parseCommunityID(c)
	if !ok {
		return
	}

	community, err := ctrl.communityService.GetCommunityByID(c.Request.Context(), communityID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "社区未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取社区详情失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, community, "社区详情获取成功")
}

// CreateCommunity 创建社区
// @Summary      创建社区
// @Description  管理员直接创建社区，不经过申请流程。
// @Tags         communities (社区)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommunityRequest true "社区资料"
// @Success      200 {object} vo.CommunityResponseWrapper "成功响应，包含创建的社区"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求体"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/communities [post]
func (ctrl *CommunityController) CreateCommunity(c *gin.Context) {
	var req dto.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	community, err := ctrl.communityService.CreateCommunity(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建社区失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, community, "社区创建成功")
}

// UpdateCommunity 更新社区资料
// @Summary      更新社区资料
// @Tags         communities (社区)
// @Accept       json
// @Produce      json
// @Param        community_id path int true "社区 ID"
// @Param        request body dto.UpdateCommunityRequest true "要更新的字段"
// @Success      200 {object} vo.CommunityResponseWrapper "成功响应，包含更新后的社区"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      404 {object} vo.EmptyResponseWrapper "社区未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/communities/{community_id} [put]
func (ctrl *CommunityController) UpdateCommunity(c *gin.Context) {
	communityID, ok := parseCommunityID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	community, err := ctrl.communityService.UpdateCommunity(c.Request.Context(), communityID, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "社区未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新社区失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, community, "社区更新成功")
}

// DeleteCommunity 删除社区
// @Summary      删除社区
// @Description  删除社区。关联的帖子与成员关系不做级联清理。
// @Tags         communities (社区)
// @Produce      json
// @Param        community_id path int true "社区 ID"
// @Success      200 {object} vo.EmptyResponseWrapper "成功响应"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的社区 ID"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      404 {object} vo.EmptyResponseWrapper "社区未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/communities/{community_id} [delete]
func (ctrl *CommunityController) DeleteCommunity(c *gin.Context) {
	communityID, ok := parseCommunityID(c)
	if !ok {
		return
	}

	if err := ctrl.communityService.DeleteCommunity(c.Request.Context(), communityID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "社区未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除社区失败: "+err.Error())
		return
	}

	response.RespondSuccess[any](c, nil, "社区删除成功")
}

// RequestCommunity 提交建社申请
// @Summary      提交建社申请
// @Description  普通用户提交建社申请，等待管理员审批。
// @Tags         communities (社区)
// @Accept       json
// @Produce      json
// @Param        request body dto.RequestCommunityRequest true "申请内容"
// @Success      200 {object} vo.CommunityRequestListResponseWrapper "成功响应，包含创建的申请"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求体"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/community-requests [post]
func (ctrl *CommunityController) RequestCommunity(c *gin.Context) {
	var req dto.RequestCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	request, err := ctrl.communityService.RequestCommunity(c.Request.Context(), identity, &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "提交建社申请失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, request, "建社申请已提交")
}

// ListCommunityRequests 查询建社申请队列
// @Summary      查询建社申请队列
// @Tags         communities (社区)
// @Produce      json
// @Param        status query int false "申请状态 (0:待处理, 1:已批准, 2:已驳回)" default(0)
// @Success      200 {object} vo.CommunityRequestListResponseWrapper "成功响应，包含申请列表"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的状态参数"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/community-requests [get]
func (ctrl *CommunityController) ListCommunityRequests(c *gin.Context) {
	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	requests, err := ctrl.communityService.ListCommunityRequests(c.Request.Context(), status)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "查询建社申请失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, requests, "建社申请列表获取成功")
}

// ApproveCommunityRequest 批准建社申请
// @Summary      批准建社申请
// @Description  置申请为已批准，并按申请内容创建社区。不检查重名。
// @Tags         communities (社区)
// @Produce      json
// @Param        request_id path int true "申请 ID"
// @Success      200 {object} vo.CommunityRequestListResponseWrapper "成功响应，包含批准后的申请"
// @Failure      400 {object} vo.EmptyResponseWrapper "申请已有结论"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      404 {object} vo.EmptyResponseWrapper "申请未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/community-requests/{request_id}/approve [post]
func (ctrl *CommunityController) ApproveCommunityRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	request, err := ctrl.communityService.ApproveCommunityRequest(c.Request.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "建社申请未找到")
		case errors.Is(err, myErrors.ErrRequestAlreadyDecided):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "申请已有审批结论")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "批准建社申请失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, request, "建社申请已批准")
}

// RejectCommunityRequest 驳回建社申请
// @Summary      驳回建社申请
// @Tags         communities (社区)
// @Accept       json
// @Produce      json
// @Param        request_id path int true "申请 ID"
// @Param        request body dto.RejectRequest true "驳回理由"
// @Success      200 {object} vo.CommunityRequestListResponseWrapper "成功响应，包含驳回后的申请"
// @Failure      400 {object} vo.EmptyResponseWrapper "申请已有结论"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      404 {object} vo.EmptyResponseWrapper "申请未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/community-requests/{request_id}/reject [post]
func (ctrl *CommunityController) RejectCommunityRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	request, err := ctrl.communityService.RejectCommunityRequest(c.Request.Context(), requestID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "建社申请未找到")
		case errors.Is(err, myErrors.ErrRequestAlreadyDecided):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "申请已有审批结论")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "驳回建社申请失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, request, "建社申请已驳回")
}

// RegisterRoutes 注册 CommunityController 的路由
func (ctrl *CommunityController) RegisterRoutes(group *gin.RouterGroup) {
	adminOnly := middleware.RequireRoles(enums.RoleAdmin, enums.RoleSuperAdmin)

	communities := group.Group("/communities")
	{
		communities.GET("", ctrl.ListCommunities)                 // GET /api/v1/community/communities
		communities.GET("/:community_id", ctrl.GetCommunityByID)  // GET /api/v1/community/communities/:community_id
		communities.POST("", adminOnly, ctrl.CreateCommunity)
		communities.PUT("/:community_id", adminOnly, ctrl.UpdateCommunity)
		communities.DELETE("/:community_id", adminOnly, ctrl.DeleteCommunity)
	}

	requests := group.Group("/community-requests")
	{
		requests.POST("", middleware.RequireIdentity(), ctrl.RequestCommunity)
		requests.GET("", adminOnly, ctrl.ListCommunityRequests)
		requests.POST("/:request_id/approve", adminOnly, ctrl.ApproveCommunityRequest)
		requests.POST("/:request_id/reject", adminOnly, ctrl.RejectCommunityRequest)
	}
}
