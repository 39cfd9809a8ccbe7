package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
)

// 事件名称常量。
// 订阅方按名称区分事件；载荷包含足够的信息让客户端无需回源即可对账本地状态。
const (
	// PostCreated 人类发帖创建成功，载荷为完整帖子快照
	PostCreated = "post:created"
	// PostAICreated AI 帖子进入待审核队列，载荷为完整帖子快照
	PostAICreated = "post:ai_created"
	// PostValidated 审核裁定完成，载荷为 {postId, status}
	PostValidated = "post:validated"
	// PostPublished 帖子发布，载荷为完整帖子快照
	PostPublished = "post:published"
	// PostComment 评论追加成功，载荷为 {postId, comment}
	PostComment = "post:comment"
	// PostReact 反应集合变更，载荷为 {postId, reactions}
	PostReact = "post:react"
)

// Event 是事件通道上的统一消息结构。
type Event struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New 构造一个带唯一ID和当前时间戳的事件。
func New(name string, payload interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      name,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// PostValidatedPayload 审核事件载荷。
type PostValidatedPayload struct {
	PostID uint64                 `json:"postId"`
	Status enums.ValidationStatus `json:"status"`
}

// PostCommentPayload 评论事件载荷，携带新追加的那条评论。
type PostCommentPayload struct {
	PostID  uint64       `json:"postId"`
	Comment vo.CommentVO `json:"comment"`
}

// PostReactPayload 反应事件载荷，携带帖子当前的完整反应集合。
type PostReactPayload struct {
	PostID    uint64          `json:"postId"`
	Reactions []vo.ReactionVO `json:"reactions"`
}
