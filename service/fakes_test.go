package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/events"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
)

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

// capturingHub 收集发布的事件，供断言事件名与载荷。
type capturingHub struct {
	mu     sync.Mutex
	events []events.Event
}

func (h *capturingHub) Publish(event events.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

func (h *capturingHub) Subscribe() (string, <-chan events.Event) { return "", nil }
func (h *capturingHub) Unsubscribe(string)                       {}
func (h *capturingHub) Close()                                   {}

func (h *capturingHub) names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.events))
	for _, event := range h.events {
		names = append(names, event.Name)
	}
	return names
}

func (h *capturingHub) last() (events.Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.events) == 0 {
		return events.Event{}, false
	}
	return h.events[len(h.events)-1], true
}

// fakePostRepo 是 PostRepository 的内存实现。
type fakePostRepo struct {
	mu     sync.Mutex
	nextID uint64
	posts  map[uint64]*entities.Post

	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*entities.Post)}
}

func (r *fakePostRepo) CreatePost(_ context.Context, _ *gorm.DB, post *entities.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	post.ID = r.nextID
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id uint64) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) ListPosts(_ context.Context, community string, _ int) ([]*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.Post
	for _, post := range r.posts {
		if !post.Published {
			continue
		}
		if community != "" && post.CommunityName != community {
			continue
		}
		copied := *post
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakePostRepo) ListPendingAIPosts(_ context.Context) ([]*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.Post
	for _, post := range r.posts {
		if post.AIGenerated && post.ValidationStatus == enums.ValidationPending {
			copied := *post
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakePostRepo) ListUnpublishedAIPosts(_ context.Context) ([]*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.Post
	for _, post := range r.posts {
		if post.AIGenerated && !post.Published {
			copied := *post
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakePostRepo) UpdatePostContent(_ context.Context, postID uint64, title *string, content *string, editedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}
	post.EditedBy = editedBy
	return nil
}

func (r *fakePostRepo) UpdateValidationStatus(_ context.Context, postID uint64, status enums.ValidationStatus, editedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	post.ValidationStatus = status
	post.EditedBy = editedBy
	return nil
}

func (r *fakePostRepo) SetPublished(_ context.Context, postID uint64, published bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	post.Published = published
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(r.posts, id)
	return nil
}

// fakeCommunityRepo 是 CommunityRepository 的内存实现。
type fakeCommunityRepo struct {
	mu          sync.Mutex
	nextID      uint64
	communities map[uint64]*entities.Community

	touchedActivity map[uint64]string
}

func newFakeCommunityRepo() *fakeCommunityRepo {
	return &fakeCommunityRepo{
		communities:     make(map[uint64]*entities.Community),
		touchedActivity: make(map[uint64]string),
	}
}

func (r *fakeCommunityRepo) seed(name string) *entities.Community {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	community := &entities.Community{Name: name}
	community.ID = r.nextID
	r.communities[community.ID] = community
	return community
}

func (r *fakeCommunityRepo) CreateCommunity(_ context.Context, _ *gorm.DB, community *entities.Community) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	community.ID = r.nextID
	stored := *community
	r.communities[community.ID] = &stored
	return nil
}

func (r *fakeCommunityRepo) GetCommunityByID(_ context.Context, id uint64) (*entities.Community, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	community, ok := r.communities[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	copied := *community
	return &copied, nil
}

func (r *fakeCommunityRepo) GetCommunityByName(_ context.Context, name string) (*entities.Community, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var earliest *entities.Community
	for _, community := range r.communities {
		if community.Name != name {
			continue
		}
		if earliest == nil || community.ID < earliest.ID {
			earliest = community
		}
	}
	if earliest == nil {
		return nil, commonerrors.ErrRepoNotFound
	}
	copied := *earliest
	return &copied, nil
}

func (r *fakeCommunityRepo) ListCommunities(_ context.Context) ([]*entities.Community, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entities.Community, 0, len(r.communities))
	for id := uint64(1); id <= r.nextID; id++ {
		if community, ok := r.communities[id]; ok {
			copied := *community
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeCommunityRepo) UpdateCommunity(_ context.Context, id uint64, name *string, description *string, category *string, color *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	community, ok := r.communities[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if name != nil {
		community.Name = *name
	}
	if description != nil {
		community.Description = *description
	}
	if category != nil {
		community.Category = *category
	}
	if color != nil {
		community.Color = *color
	}
	return nil
}

func (r *fakeCommunityRepo) DeleteCommunity(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.communities[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(r.communities, id)
	return nil
}

func (r *fakeCommunityRepo) IncrementMemberCount(_ context.Context, _ *gorm.DB, id uint64, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	community, ok := r.communities[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if delta < 0 && community.MemberCount == 0 {
		return nil
	}
	community.MemberCount += delta
	return nil
}

func (r *fakeCommunityRepo) SetDailyPosts(_ context.Context, id uint64, count int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	community, ok := r.communities[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	community.DailyPosts = count
	return nil
}

func (r *fakeCommunityRepo) TouchRecentActivity(_ context.Context, id uint64, activity string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touchedActivity[id] = activity
	return nil
}

// fakeActivityRepo 是 CommunityActivityRepository 的内存实现。
type fakeActivityRepo struct {
	mu     sync.Mutex
	counts map[uint64]int64
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{counts: make(map[uint64]int64)}
}

func (r *fakeActivityRepo) IncrDailyPosts(_ context.Context, communityID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[communityID]++
	return nil
}

func (r *fakeActivityRepo) GetAllDailyCounts(_ context.Context, _ int64) (map[uint64]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make(map[uint64]int64, len(r.counts))
	for id, count := range r.counts {
		snapshot[id] = count
	}
	return snapshot, nil
}

func (r *fakeActivityRepo) ResetDailyCounts(_ context.Context, communityIDs []uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range communityIDs {
		delete(r.counts, id)
	}
	return nil
}

func (r *fakeActivityRepo) countFor(communityID uint64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[communityID]
}

// fakeInteractionRepo 是 InteractionRepository 的内存实现。
type fakeInteractionRepo struct {
	mu            sync.Mutex
	nextCommentID uint64
	comments      []entities.Comment
	reactions     map[uint64][]entities.Reaction

	addCommentErr error
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{reactions: make(map[uint64][]entities.Reaction)}
}

func (r *fakeInteractionRepo) AddComment(_ context.Context, comment *entities.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addCommentErr != nil {
		return r.addCommentErr
	}
	r.nextCommentID++
	comment.ID = r.nextCommentID
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeInteractionRepo) ToggleReaction(_ context.Context, reaction *entities.Reaction) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := r.reactions[reaction.PostID]
	for i, candidate := range existing {
		if candidate.UserID == reaction.UserID && candidate.Type == reaction.Type {
			r.reactions[reaction.PostID] = append(existing[:i], existing[i+1:]...)
			return false, nil
		}
	}
	r.reactions[reaction.PostID] = append(existing, *reaction)
	return true, nil
}

func (r *fakeInteractionRepo) GetReactionsByPostID(_ context.Context, postID uint64) ([]entities.Reaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Reaction(nil), r.reactions[postID]...), nil
}

// fakeMembershipRepo 是 MembershipRepository 的内存实现。
type fakeMembershipRepo struct {
	mu       sync.Mutex
	nextID   uint64
	requests map[uint64]*entities.JoinRequest
	members  map[string]map[uint64]bool

	// addMemberCalls 统计 AddMember 调用次数，幂等性断言使用。
	addMemberCalls int
	addMemberErr   error
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{
		requests: make(map[uint64]*entities.JoinRequest),
		members:  make(map[string]map[uint64]bool),
	}
}

func (r *fakeMembershipRepo) CreateJoinRequest(_ context.Context, request *entities.JoinRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.requests {
		if existing.UserID == request.UserID &&
			existing.CommunityID == request.CommunityID &&
			existing.Status == commonEnums.Pending {
			return myErrors.ErrJoinRequestPending
		}
	}
	r.nextID++
	request.ID = r.nextID
	stored := *request
	r.requests[request.ID] = &stored
	return nil
}

func (r *fakeMembershipRepo) GetJoinRequestByID(_ context.Context, id uint64) (*entities.JoinRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	copied := *request
	return &copied, nil
}

func (r *fakeMembershipRepo) ListJoinRequestsByStatus(_ context.Context, status commonEnums.Status) ([]*entities.JoinRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.JoinRequest
	for id := uint64(1); id <= r.nextID; id++ {
		if request, ok := r.requests[id]; ok && request.Status == status {
			copied := *request
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeMembershipRepo) UpdateJoinRequestStatus(_ context.Context, id uint64, status commonEnums.Status, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if request.Status != commonEnums.Pending {
		return myErrors.ErrRequestAlreadyDecided
	}
	request.Status = status
	request.Reason = reason
	return nil
}

func (r *fakeMembershipRepo) AddMember(_ context.Context, userID string, communityID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addMemberCalls++
	if r.addMemberErr != nil {
		return r.addMemberErr
	}
	if r.members[userID] == nil {
		r.members[userID] = make(map[uint64]bool)
	}
	r.members[userID][communityID] = true
	return nil
}

func (r *fakeMembershipRepo) RemoveMember(_ context.Context, userID string, communityID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members[userID], communityID)
	return nil
}

func (r *fakeMembershipRepo) IsMember(_ context.Context, userID string, communityID uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.members[userID][communityID], nil
}

func (r *fakeMembershipRepo) ListMemberCommunityIDs(_ context.Context, userID string) ([]uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uint64
	for id := range r.members[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

// fakeCommunityRequestRepo 是 CommunityRequestRepository 的内存实现。
type fakeCommunityRequestRepo struct {
	mu       sync.Mutex
	nextID   uint64
	requests map[uint64]*entities.CommunityRequest
}

func newFakeCommunityRequestRepo() *fakeCommunityRequestRepo {
	return &fakeCommunityRequestRepo{requests: make(map[uint64]*entities.CommunityRequest)}
}

func (r *fakeCommunityRequestRepo) CreateCommunityRequest(_ context.Context, request *entities.CommunityRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	request.ID = r.nextID
	stored := *request
	r.requests[request.ID] = &stored
	return nil
}

func (r *fakeCommunityRequestRepo) GetCommunityRequestByID(_ context.Context, id uint64) (*entities.CommunityRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	copied := *request
	return &copied, nil
}

func (r *fakeCommunityRequestRepo) ListCommunityRequestsByStatus(_ context.Context, status commonEnums.Status) ([]*entities.CommunityRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.CommunityRequest
	for id := uint64(1); id <= r.nextID; id++ {
		if request, ok := r.requests[id]; ok && request.Status == status {
			copied := *request
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeCommunityRequestRepo) UpdateCommunityRequestStatus(_ context.Context, _ *gorm.DB, id uint64, status commonEnums.Status, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if request.Status != commonEnums.Pending {
		return myErrors.ErrRequestAlreadyDecided
	}
	request.Status = status
	request.Reason = reason
	return nil
}

// fakeUserRepo 是 UserRepository 的内存实现。
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) UpsertUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	copied := *user
	return &copied, nil
}
