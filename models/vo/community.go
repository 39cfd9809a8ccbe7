package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
)

// CommunityVO 定义了社区在响应中的数据结构
type CommunityVO struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Members        int64     `json:"members"`        // 成员计数，递减时在存储层保证不为负
	DailyPosts     int64     `json:"dailyPosts"`     // 周期性由活跃度同步任务回写
	Moderators     []string  `json:"moderators"`
	RecentActivity string    `json:"recentActivity"`
	Color          string    `json:"color,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewCommunityVOFromEntity 将社区实体转换为视图对象
func NewCommunityVOFromEntity(c *entities.Community) *CommunityVO {
	moderators := c.Moderators
	if moderators == nil {
		moderators = []string{}
	}
	return &CommunityVO{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Category:       c.Category,
		Members:        c.MemberCount,
		DailyPosts:     c.DailyPosts,
		Moderators:     moderators,
		RecentActivity: c.RecentActivity,
		Color:          c.Color,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// MapCommunitiesToVOs 批量转换社区实体列表
func MapCommunitiesToVOs(communities []*entities.Community) []*CommunityVO {
	vos := make([]*CommunityVO, 0, len(communities))
	for _, c := range communities {
		vos = append(vos, NewCommunityVOFromEntity(c))
	}
	return vos
}
