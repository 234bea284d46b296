package post

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	posts  []Post
	nextID uint
}

func (m *memRepo) Create(ctx context.Context, p *Post) error {
	m.nextID++
	p.ID = m.nextID
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.posts = append([]Post{*p}, m.posts...)
	return nil
}

func (m *memRepo) List(ctx context.Context) ([]Post, error) {
	out := make([]Post, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *memRepo) Delete(ctx context.Context, id uint) error {
	for i, p := range m.posts {
		if p.ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memLikes struct {
	counts      map[uint]int64
	likedBy     map[string]map[uint]bool
	dropped     []uint
	likedByUser string
}

func (m *memLikes) CountsFor(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	return m.counts, nil
}

func (m *memLikes) LikedBy(ctx context.Context, userID string, postIDs []uint) (map[uint]bool, error) {
	m.likedByUser = userID
	return m.likedBy[userID], nil
}

func (m *memLikes) DropPost(ctx context.Context, postID uint) error {
	m.dropped = append(m.dropped, postID)
	return nil
}

type capturedEvents struct {
	events []any
}

func (c *capturedEvents) WriteJSON(ctx context.Context, v any) error {
	c.events = append(c.events, v)
	return nil
}

func (c *capturedEvents) Close() error { return nil }

func newTestService() (*memRepo, *memLikes, *capturedEvents, Service) {
	repo := &memRepo{}
	likes := &memLikes{counts: map[uint]int64{}, likedBy: map[string]map[uint]bool{}}
	events := &capturedEvents{}
	return repo, likes, events, NewService(repo, likes, events)
}

func strptr(s string) *string { return &s }

func TestCreate_BlankContentRejected(t *testing.T) {
	repo, _, events, svc := newTestService()

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.Create(context.Background(), CreatePostRequest{Content: content})
		assert.ErrorIs(t, err, ErrEmptyContent)
	}
	assert.Empty(t, repo.posts, "no row may be persisted for blank content")
	assert.Empty(t, events.events)
}

func TestCreate_TrimsAndNormalizes(t *testing.T) {
	repo, _, _, svc := newTestService()

	view, err := svc.Create(context.Background(), CreatePostRequest{
		Content:  "  hello world  ",
		ImageURL: strptr("   "),
		UserID:   nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "hello world", view.Content)
	assert.Nil(t, view.ImageURL, "blank imageUrl coalesces to null")
	assert.Nil(t, view.UserID)
	assert.Equal(t, uint(1), view.ID)
	assert.Zero(t, view.LikeCount)
	assert.False(t, view.IsLiked)
	require.Len(t, repo.posts, 1)
}

func TestCreate_PublishesEvent(t *testing.T) {
	_, _, events, svc := newTestService()

	_, err := svc.Create(context.Background(), CreatePostRequest{
		Content: "hello",
		UserID:  strptr("u1"),
	})
	require.NoError(t, err)

	require.Len(t, events.events, 1)
	ev, ok := events.events[0].(postCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "post.created", ev.Type)
	assert.Equal(t, uint(1), ev.PostID)
	assert.NotEmpty(t, ev.EventID)
}

func TestList_AttachesLikeMetadata(t *testing.T) {
	repo, likes, _, svc := newTestService()

	for _, c := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), CreatePostRequest{Content: c})
		require.NoError(t, err)
	}
	likes.counts = map[uint]int64{1: 2, 3: 1}
	likes.likedBy["u1"] = map[uint]bool{3: true}

	views, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, views, 3)

	// newest first
	assert.Equal(t, "third", views[0].Content)
	assert.Equal(t, int64(1), views[0].LikeCount)
	assert.True(t, views[0].IsLiked)

	assert.Equal(t, "second", views[1].Content)
	assert.Zero(t, views[1].LikeCount)
	assert.False(t, views[1].IsLiked)

	assert.Equal(t, "first", views[2].Content)
	assert.Equal(t, int64(2), views[2].LikeCount)
	assert.False(t, views[2].IsLiked)

	// repo contents unchanged by enrichment
	require.Len(t, repo.posts, 3)
}

func TestList_NoUserIDMeansNeverLiked(t *testing.T) {
	_, likes, _, svc := newTestService()

	_, err := svc.Create(context.Background(), CreatePostRequest{Content: "hello"})
	require.NoError(t, err)
	likes.counts = map[uint]int64{1: 5}
	likes.likedBy["u1"] = map[uint]bool{1: true}

	views, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(5), views[0].LikeCount)
	assert.False(t, views[0].IsLiked)
	assert.Empty(t, likes.likedByUser, "LikedBy must not be queried without a userId")
}

func TestDelete_CascadesLikeCount(t *testing.T) {
	_, likes, _, svc := newTestService()

	_, err := svc.Create(context.Background(), CreatePostRequest{Content: "hello"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []uint{1}, likes.dropped)

	err = svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
