package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/community_service/models/enums"
)

// Post 帖子实体
// - 使用场景: 社区内的内容单元，人类或 AI 创作，AI 内容需经人工审核门禁后才可发布
// - 表名: posts (GORM 默认使用结构体名复数形式)
// - 评论与反应是子表而非 JSON 文档内嵌，这样计数器与集合变更都能下推为单条原子 SQL
type Post struct {
	entities.BaseModel // 嵌入自定义的 BaseModel，包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，最大长度255个字符
	Title string `gorm:"type:varchar(255);not null" json:"title"`

	// 正文，支持多行文本
	Content string `gorm:"type:text" json:"content"`

	// 帖子配图 URL，可为空
	// - 仅保存外部引用字符串，文件上传与存储由外部服务负责，不在本服务范围内
	ImageURL string `gorm:"type:varchar(255)" json:"imageUrl"`

	// 所属社区名称，冗余字段，非外键
	// - 源系统即按名称关联；社区删除后帖子保留该名称，不做级联
	CommunityName string `gorm:"type:varchar(100);not null;index" json:"community"`

	// 作者ID，网关透传的用户ID (UUID 格式)
	// - 调度器生成的帖子没有请求上下文，作者ID为空字符串
	AuthorID string `gorm:"type:char(36)" json:"authorId"`

	// 作者展示名，冗余字段，数据来源于身份服务
	AuthorName string `gorm:"type:varchar(50);not null" json:"authorName"`

	// 回应计数，与评论条数保持一致
	// - 评论追加与计数自增在同一事务内完成，计数自增为 SQL 原子操作
	ResponseCount int64 `gorm:"type:bigint;not null;default:0" json:"responses"`

	// 审核状态，枚举类型：0=待审核, 1=审核通过, 2=审核拒绝
	// - 人类发帖创建时即为审核通过；AI 发帖创建时为待审核
	ValidationStatus enums.ValidationStatus `gorm:"type:int;default:0" json:"validationStatus"`

	// 发布开关，控制帖子是否出现在公开列表中
	// - 与审核状态相互独立：发布操作不校验审核结果，沿用既有系统的策略
	Published bool `gorm:"not null;default:false" json:"published"`

	// 是否为 AI 生成内容
	AIGenerated bool `gorm:"not null;default:false" json:"aiGenerated"`

	// 最后一次人工编辑/审核人的展示名
	EditedBy string `gorm:"type:varchar(50)" json:"editedBy"`

	// 关联的评论列表，按追加顺序排列
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`

	// 关联的反应列表，无序可变集合
	Reactions []Reaction `gorm:"foreignKey:PostID" json:"reactions"`
}
