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

// MembershipController 定义入社申请与成员关系的控制器。
// 申请审批流与直接加入两条路径都保留，底层共用同一组成员关系原语。
type MembershipController struct {
	membershipService service.MembershipService
}

// NewMembershipController 构造函数，用于创建 MembershipController 实例
func NewMembershipController(membershipService service.MembershipService) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
	}
}

// RequestJoin 提交入社申请
// @Summary      提交入社申请
// @Description  对指定社区提交入社申请。同一用户对同一社区已有待处理申请时返回 400。
// @Tags         membership (成员)
// @Accept       json
// @Produce      json
// @Param        community_id path int true "社区 ID"
// @Param        request body dto.JoinCommunityRequest true "申请理由"
// @Success      200 {object} vo.JoinRequestListResponseWrapper "成功响应，包含创建的申请"
// @Failure      400 {object} vo.EmptyResponseWrapper "已存在待处理申请"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      404 {object} vo.EmptyResponseWrapper "社区未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/communities/{community_id}/join-requests [post]
func (ctrl *MembershipController) RequestJoin(c *gin.Context) {
	communityID, ok := parseCommunityID(c)
	if !ok {
		return
	}

	var req dto.JoinCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity, idOK := middleware.CurrentIdentity(c)
	if !idOK {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	request, err := ctrl.membershipService.RequestJoin(c.Request.Context(), identity, communityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "社区未找到")
		case errors.Is(err, myErrors.ErrJoinRequestPending):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "已存在待处理的入社申请")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "提交入社申请失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, request, "入社申请已提交")
}

// JoinDirect 直接加入社区
// @Summary      直接加入社区
// @Description  绕过审批直接加入社区。重复加入是幂等空操作，成员计数不会重复增加。
// @Tags         membership (成员)
// @Produce      json
// @Param        community_id path int true "社区 ID"
// @Success      200 {object} vo.EmptyResponseWrapper "成功响应"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      404 {object} vo.EmptyResponseWrapper "社区未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/communities/{community_id}/join [post]
func (ctrl *MembershipController) JoinDirect(c *gin.Context) {
	communityID, ok := parseCommunityID(c)
	if !ok {
		return
	}

	identity, idOK := middleware.CurrentIdentity(c)
	if !idOK {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	if err := ctrl.membershipService.JoinDirect(c.Request.Context(), identity, communityID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "社区未找到")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "加入社区失败: "+err.Error())
		return
	}

	response.RespondSuccess[any](c, nil, "已加入社区")
}

// LeaveDirect 退出社区
// @Summary      退出社区
// @Description  解除当前用户与社区的成员关系。成员计数递减但不会降到负数；未加入时为幂等空操作。
// @Tags         membership (成员)
// @Produce      json
// @Param        community_id path int true "社区 ID"
// @Success      200 {object} vo.EmptyResponseWrapper "成功响应"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/communities/{community_id}/membership [delete]
func (ctrl *MembershipController) LeaveDirect(c *gin.Context) {
	communityID, ok := parseCommunityID(c)
	if !ok {
		return
	}

	identity, idOK := middleware.CurrentIdentity(c)
	if !idOK {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	if err := ctrl.membershipService.LeaveDirect(c.Request.Context(), identity.UserID, communityID); err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "退出社区失败: "+err.Error())
		return
	}

	response.RespondSuccess[any](c, nil, "已退出社区")
}

// ListMyCommunities 获取我加入的社区
// @Summary      获取我加入的社区
// @Tags         membership (成员)
// @Produce      json
// @Success      200 {object} vo.CommunityListResponseWrapper "成功响应，包含社区列表"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/me/communities [get]
func (ctrl *MembershipController) ListMyCommunities(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
		return
	}

	communities, err := ctrl.membershipService.ListJoinedCommunities(c.Request.Context(), identity.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取已加入社区失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, communities, "已加入社区获取成功")
}

// ListJoinRequests 查询入社申请队列
// @Summary      查询入社申请队列
// @Tags         membership (成员)
// @Produce      json
// @Param        status query int false "申请状态 (0:待处理, 1:已批准, 2:已驳回)" default(0)
// @Success      200 {object} vo.JoinRequestListResponseWrapper "成功响应，包含申请列表"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的状态参数"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/join-requests [get]
func (ctrl *MembershipController) ListJoinRequests(c *gin.Context) {
	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	requests, err := ctrl.membershipService.ListJoinRequests(c.Request.Context(), status)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "查询入社申请失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, requests, "入社申请列表获取成功")
}

// ApproveJoin 批准入社申请
// @Summary      批准入社申请
// @Description  置申请为已批准并建立成员关系。批准是幂等安全的：关系已存在时不重复计数。
// @Tags         membership (成员)
// @Produce      json
// @Param        request_id path int true "申请 ID"
// @Success      200 {object} vo.JoinRequestListResponseWrapper "成功响应，包含批准后的申请"
// @Failure      400 {object} vo.EmptyResponseWrapper "申请已有结论"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      404 {object} vo.EmptyResponseWrapper "申请未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/join-requests/{request_id}/approve [post]
func (ctrl *MembershipController) ApproveJoin(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	request, err := ctrl.membershipService.ApproveJoin(c.Request.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "入社申请未找到")
		case errors.Is(err, myErrors.ErrRequestAlreadyDecided):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "申请已有审批结论")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "批准入社申请失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, request, "入社申请已批准")
}

// RejectJoin 驳回入社申请
// @Summary      驳回入社申请
// @Tags         membership (成员)
// @Accept       json
// @Produce      json
// @Param        request_id path int true "申请 ID"
// @Param        request body dto.RejectRequest true "驳回理由"
// @Success      200 {object} vo.JoinRequestListResponseWrapper "成功响应，包含驳回后的申请"
// @Failure      400 {object} vo.EmptyResponseWrapper "申请已有结论"
// @Failure      401 {object} vo.EmptyResponseWrapper "用户未授权"
// @Failure      403 {object} vo.EmptyResponseWrapper "角色无权访问"
// @Failure      404 {object} vo.EmptyResponseWrapper "申请未找到"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/join-requests/{request_id}/reject [post]
func (ctrl *MembershipController) RejectJoin(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	request, err := ctrl.membershipService.RejectJoin(c.Request.Context(), requestID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "入社申请未找到")
		case errors.Is(err, myErrors.ErrRequestAlreadyDecided):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "申请已有审批结论")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "驳回入社申请失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, request, "入社申请已驳回")
}

// RegisterRoutes 注册 MembershipController 的路由
func (ctrl *MembershipController) RegisterRoutes(group *gin.RouterGroup) {
	adminOnly := middleware.RequireRoles(enums.RoleAdmin, enums.RoleSuperAdmin)

	communities := group.Group("/communities")
	{
		communities.POST("/:community_id/join-requests", middleware.RequireIdentity(), ctrl.RequestJoin)
		communities.POST("/:community_id/join", middleware.RequireIdentity(), ctrl.JoinDirect)
		communities.DELETE("/:community_id/membership", middleware.RequireIdentity(), ctrl.LeaveDirect)
	}

	group.GET("/me/communities", middleware.RequireIdentity(), ctrl.ListMyCommunities)

	requests := group.Group("/join-requests")
	{
		requests.GET("", adminOnly, ctrl.ListJoinRequests)
		requests.POST("/:request_id/approve", adminOnly, ctrl.ApproveJoin)
		requests.POST("/:request_id/reject", adminOnly, ctrl.RejectJoin)
	}
}
