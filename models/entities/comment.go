package entities

import "time"

// Comment 评论实体
// - 帖子的内嵌子对象，追加后不可修改，顺序即追加顺序 (created_at, id)
// - 没有软删除列：评论一旦追加永不删除，本核心也未定义评论删除操作
type Comment struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// 所属帖子ID，外键
	PostID uint64 `gorm:"type:bigint;not null;index" json:"postId"`

	// 评论作者ID (UUID 格式)
	AuthorID string `gorm:"type:char(36)" json:"authorId"`

	// 评论作者展示名
	AuthorName string `gorm:"type:varchar(50);not null" json:"authorName"`

	// 评论内容
	Content string `gorm:"type:text;not null" json:"content"`

	// 创建时间，由服务端在追加时赋值
	CreatedAt time.Time `json:"createdAt"`
}
