package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Community 社区实体
// - 使用场景: 主题社区的元数据与成员计数，帖子通过冗余的社区名称关联（非外键）
// - 表名: communities (GORM 默认使用结构体名复数形式)
type Community struct {
	entities.BaseModel // 嵌入自定义的 BaseModel，包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 社区名称，必填
	// - 注意: 源系统不做名称唯一性校验，审批社区申请时允许产生重名社区，
	//   允许重名是被保留的策略选择，因此这里没有 unique 约束
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// 社区描述
	Description string `gorm:"type:varchar(500)" json:"description"`

	// 社区分类，例如 "chronic" / "mental-health"
	Category string `gorm:"type:varchar(50)" json:"category"`

	// 成员计数，非负，最终一致
	// - 加入/退出/审批通过都会修改该字段
	// - 更新必须下推为数据库原子自增/自减（自减在 SQL 层钳制为不小于 0），
	//   禁止应用层读-改-写，否则并发下会丢失更新
	MemberCount int64 `gorm:"type:bigint;not null;default:0" json:"members"`

	// 当日新增帖子数
	// - 实时计数在 Redis 中累加，由定时任务批量刷回本字段后清零
	DailyPosts int64 `gorm:"type:bigint;not null;default:0" json:"dailyPosts"`

	// 版主展示名列表，JSON 列存储
	Moderators []string `gorm:"type:json;serializer:json" json:"moderators"`

	// 最近活动摘要，由外部流程维护的展示字段
	RecentActivity string `gorm:"type:varchar(255)" json:"recentActivity"`

	// 社区颜色标签，前端展示用
	Color string `gorm:"type:varchar(30)" json:"color"`
}
