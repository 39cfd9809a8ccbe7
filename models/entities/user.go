package entities

import (
	"time"

	"github.com/Xushengqwer/community_service/models/enums"
)

// User 用户实体
// - 本服务不负责凭证签发与校验，这里只是身份服务用户的存储侧投影，
//   用于成员关系集合维护与申请列表的引用填充
// - 主键为身份服务颁发的 UUID，不使用自增ID
type User struct {
	ID string `gorm:"type:char(36);primaryKey" json:"id"`

	// 用户展示名
	Name string `gorm:"type:varchar(50);not null" json:"name"`

	// 用户角色，冗余自身份服务
	Role enums.UserRole `gorm:"type:varchar(20);default:'Patient'" json:"role"`

	// 头像 URL
	Avatar string `gorm:"type:varchar(255)" json:"avatar"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCommunity 用户-社区成员关系行
// - 语义是集合而非列表：(user_id, community_id) 复合主键保证重复加入不会累积，
//   加入操作使用 INSERT ... ON CONFLICT DO NOTHING 实现幂等添加（$addToSet 语义）
// - 退出为条件物理删除（$pull 语义），不使用软删除
type UserCommunity struct {
	UserID      string    `gorm:"type:char(36);primaryKey" json:"userId"`
	CommunityID uint64    `gorm:"type:bigint;primaryKey" json:"communityId"`
	CreatedAt   time.Time `json:"createdAt"`
}
