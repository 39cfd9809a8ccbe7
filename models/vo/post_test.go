package vo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

func TestNewPostVOFromEntity_MapsAllFields(t *testing.T) {
	post := &entities.Post{
		Title:            "晨跑打卡",
		Content:          "今天跑了五公里",
		ImageURL:         "https://example.com/run.jpg",
		CommunityName:    "fitness",
		AuthorID:         "user-1",
		AuthorName:       "alice",
		ResponseCount:    3,
		ValidationStatus: enums.Validated,
		Published:        true,
		AIGenerated:      false,
		EditedBy:         "dr-house",
		Comments: []entities.Comment{
			{ID: 11, AuthorID: "user-2", AuthorName: "bob", Content: "加油"},
		},
		Reactions: []entities.Reaction{
			{UserID: "user-2", Type: "like"},
		},
	}
	post.ID = 7

	postVO := NewPostVOFromEntity(post)

	assert.Equal(t, uint64(7), postVO.ID)
	assert.Equal(t, "晨跑打卡", postVO.Title)
	assert.Equal(t, "fitness", postVO.Community)
	// 回应计数与实体同宽，避免大计数值截断。
	assert.Equal(t, int64(3), postVO.Responses)
	assert.Equal(t, enums.Validated, postVO.ValidationStatus)
	assert.True(t, postVO.Published)
	assert.Equal(t, "dr-house", postVO.EditedBy)
	require.Len(t, postVO.Comments, 1)
	assert.Equal(t, "bob", postVO.Comments[0].AuthorName)
	require.Len(t, postVO.Reactions, 1)
	assert.Equal(t, "like", postVO.Reactions[0].Type)
}

func TestNewPostVOFromEntity_EmptyCollectionsAreNonNil(t *testing.T) {
	post := &entities.Post{
		Title:         "空帖",
		CommunityName: "sleep",
		AuthorName:    "AI Agent",
		AIGenerated:   true,
	}

	postVO := NewPostVOFromEntity(post)

	assert.NotNil(t, postVO.Comments)
	assert.NotNil(t, postVO.Reactions)
	assert.Empty(t, postVO.Comments)
	assert.Empty(t, postVO.Reactions)
}
