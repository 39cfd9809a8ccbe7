package vo

import (
	"time"

	"github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/community_service/models/entities"
)

// UserSummaryVO 定义了申请记录中引用的用户摘要
type UserSummaryVO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// CommunitySummaryVO 定义了申请记录中引用的社区摘要
type CommunitySummaryVO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// JoinRequestVO 定义了入社申请的响应数据结构
type JoinRequestVO struct {
	ID        uint64              `json:"id"`
	Status    enums.Status        `json:"status"` // 0=pending 1=approved 2=rejected
	Reason    string              `json:"reason,omitempty"`
	User      *UserSummaryVO      `json:"user,omitempty"`
	Community *CommunitySummaryVO `json:"community,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// CommunityRequestVO 定义了建社申请的响应数据结构
type CommunityRequestVO struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Status      enums.Status   `json:"status"`
	Reason      string         `json:"reason,omitempty"`
	User        *UserSummaryVO `json:"user,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func newUserSummary(u *entities.User) *UserSummaryVO {
	if u == nil {
		return nil
	}
	return &UserSummaryVO{
		ID:     u.ID,
		Name:   u.Name,
		Role:   string(u.Role),
		Avatar: u.Avatar,
	}
}

// NewJoinRequestVOFromEntity 将入社申请实体(含预加载的用户与社区)转换为视图对象
func NewJoinRequestVOFromEntity(r *entities.JoinRequest) *JoinRequestVO {
	vo := &JoinRequestVO{
		ID:        r.ID,
		Status:    r.Status,
		Reason:    r.Reason,
		User:      newUserSummary(r.User),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Community != nil {
		vo.Community = &CommunitySummaryVO{ID: r.Community.ID, Name: r.Community.Name}
	}
	return vo
}

// MapJoinRequestsToVOs 批量转换入社申请实体列表
func MapJoinRequestsToVOs(requests []*entities.JoinRequest) []*JoinRequestVO {
	vos := make([]*JoinRequestVO, 0, len(requests))
	for _, r := range requests {
		vos = append(vos, NewJoinRequestVOFromEntity(r))
	}
	return vos
}

// NewCommunityRequestVOFromEntity 将建社申请实体转换为视图对象
func NewCommunityRequestVOFromEntity(r *entities.CommunityRequest) *CommunityRequestVO {
	return &CommunityRequestVO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		Reason:      r.Reason,
		User:        newUserSummary(r.User),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// MapCommunityRequestsToVOs 批量转换建社申请实体列表
func MapCommunityRequestsToVOs(requests []*entities.CommunityRequest) []*CommunityRequestVO {
	vos := make([]*CommunityRequestVO, 0, len(requests))
	for _, r := range requests {
		vos = append(vos, NewCommunityRequestVOFromEntity(r))
	}
	return vos
}
