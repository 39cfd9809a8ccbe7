package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
	"github.com/Xushengqwer/go-common/models/enums"
)

// JoinRequest 入会申请实体
// - 状态机: pending → approved 或 pending → rejected，两个终态都不可再迁移
// - 约束: 同一 (用户, 社区) 对最多存在一条 pending 申请，重复申请在 API 边界拒绝
type JoinRequest struct {
	entities.BaseModel

	// 申请人ID (UUID 格式)
	UserID string `gorm:"type:char(36);not null;index:idx_user_community" json:"userId"`

	// 目标社区ID
	CommunityID uint64 `gorm:"type:bigint;not null;index:idx_user_community" json:"communityId"`

	// 申请状态，复用公共枚举：0=待处理, 1=已批准, 2=已拒绝
	Status enums.Status `gorm:"type:int;default:0" json:"status"`

	// 拒绝原因，可为空
	Reason string `gorm:"type:varchar(255)" json:"reason"`

	// 关联申请人，用于申请列表的引用填充展示
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// 关联目标社区，用于申请列表的引用填充展示
	Community *Community `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
}
