package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// CommentVO 定义了评论在响应中的数据结构
type CommentVO struct {
	ID         uint64    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReactionVO 定义了反应在响应中的数据结构
type ReactionVO struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`
}

// PostVO 定义了帖子详情的响应数据结构
type PostVO struct {
	ID               uint64                 `json:"id"`
	Title            string                 `json:"title"`
	Content          string                 `json:"content"`
	ImageURL         string                 `json:"imageUrl,omitempty"`
	Community        string                 `json:"community"`
	AuthorID         string                 `json:"authorId"`
	AuthorName       string                 `json:"authorName"`
	Responses        int64                  `json:"responses"`         // 评论计数，与 comments 长度可能短暂不一致
	ValidationStatus enums.ValidationStatus `json:"validationStatus"`  // 0=pending 1=validated 2=rejected
	Published        bool                   `json:"published"`
	AIGenerated      bool                   `json:"aiGenerated"`
	EditedBy         string                 `json:"editedBy,omitempty"`
	Comments         []CommentVO            `json:"comments"`
	Reactions        []ReactionVO           `json:"reactions"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// NewCommentVO 将评论实体转换为视图对象
func NewCommentVO(c *entities.Comment) CommentVO {
	return CommentVO{
		ID:         c.ID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

// NewReactionVOs 将反应实体列表转换为视图对象列表，保证返回非 nil 切片
func NewReactionVOs(reactions []entities.Reaction) []ReactionVO {
	vos := make([]ReactionVO, 0, len(reactions))
	for i := range reactions {
		vos = append(vos, ReactionVO{
			UserID: reactions[i].UserID,
			Type:   reactions[i].Type,
		})
	}
	return vos
}

// NewPostVOFromEntity 将帖子实体(含预加载的评论与反应)转换为视图对象
func NewPostVOFromEntity(post *entities.Post) *PostVO {
	comments := make([]CommentVO, 0, len(post.Comments))
	for i := range post.Comments {
		comments = append(comments, NewCommentVO(&post.Comments[i]))
	}
	return &PostVO{
		ID:               post.ID,
		Title:            post.Title,
		Content:          post.Content,
		ImageURL:         post.ImageURL,
		Community:        post.CommunityName,
		AuthorID:         post.AuthorID,
		AuthorName:       post.AuthorName,
		Responses:        post.ResponseCount,
		ValidationStatus: post.ValidationStatus,
		Published:        post.Published,
		AIGenerated:      post.AIGenerated,
		EditedBy:         post.EditedBy,
		Comments:         comments,
		Reactions:        NewReactionVOs(post.Reactions),
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.UpdatedAt,
	}
}

// MapPostsToPostVOs 批量转换帖子实体列表为视图对象列表
func MapPostsToPostVOs(posts []*entities.Post) []*PostVO {
	vos := make([]*PostVO, 0, len(posts))
	for _, post := range posts {
		vos = append(vos, NewPostVOFromEntity(post))
	}
	return vos
}
