package entities

import "time"

// Reaction 反应实体
// - (by, type) 对在同一帖子内最多存在一条：同一用户对同一帖子再次提交相同类型的反应
//   等价于撤销（toggle 语义，集合而非多重集合）
// - 唯一索引保证集合语义；不使用软删除，toggle 的删除分支必须物理删除，
//   否则被软删除的行会继续占用唯一索引导致无法再次点亮
type Reaction struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// 所属帖子ID，外键，唯一索引第一列
	PostID uint64 `gorm:"type:bigint;not null;uniqueIndex:uk_post_user_type" json:"postId"`

	// 反应发起人ID (UUID 格式)，唯一索引第二列
	UserID string `gorm:"type:char(36);not null;uniqueIndex:uk_post_user_type" json:"by"`

	// 反应类型标签，例如 "like" / "heart"，唯一索引第三列
	Type string `gorm:"type:varchar(30);not null;uniqueIndex:uk_post_user_type" json:"type"`

	CreatedAt time.Time `json:"createdAt"`
}
