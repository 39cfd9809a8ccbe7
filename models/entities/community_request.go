package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
	"github.com/Xushengqwer/go-common/models/enums"
)

// CommunityRequest 建区申请实体
// - 状态机与 JoinRequest 同形: pending → approved/rejected，终态不可迁移
// - 审批通过时会根据提案字段合成一个新社区，不检查名称冲突（保留的源系统策略）
type CommunityRequest struct {
	entities.BaseModel

	// 申请人ID (UUID 格式)
	UserID string `gorm:"type:char(36);not null;index" json:"userId"`

	// 提案的社区名称
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// 提案的社区描述
	Description string `gorm:"type:varchar(500)" json:"description"`

	// 提案的社区分类
	Category string `gorm:"type:varchar(50)" json:"category"`

	// 申请状态：0=待处理, 1=已批准, 2=已拒绝
	Status enums.Status `gorm:"type:int;default:0" json:"status"`

	// 拒绝原因，可为空
	Reason string `gorm:"type:varchar(255)" json:"reason"`

	// 关联申请人，用于申请列表的引用填充展示
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
