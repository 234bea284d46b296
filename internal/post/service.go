package post

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"social-feed-service/internal/kafka"
)

type Service interface {
	Create(ctx context.Context, in CreatePostRequest) (*PostView, error)
	List(ctx context.Context, forUserID string) ([]PostView, error)
	Delete(ctx context.Context, id uint) error
}

// LikeSource provides the like metadata attached to posts. Implemented by the
// like service.
type LikeSource interface {
	CountsFor(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	LikedBy(ctx context.Context, userID string, postIDs []uint) (map[uint]bool, error)
	DropPost(ctx context.Context, postID uint) error
}

type service struct {
	repo   Repository
	likes  LikeSource
	events kafka.Writer
}

// NewService builds the post service. events may be nil, in which case no
// post.created events are published.
func NewService(repo Repository, likes LikeSource, events kafka.Writer) Service {
	return &service{repo: repo, likes: likes, events: events}
}

type postCreatedEvent struct {
	EventID   string    `json:"eventId"`
	Type      string    `json:"type"`
	PostID    uint      `json:"postId"`
	UserID    *string   `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *service) Create(ctx context.Context, in CreatePostRequest) (*PostView, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	p := &Post{
		Content:  content,
		ImageURL: normalize(in.ImageURL),
		UserID:   normalize(in.UserID),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.events != nil {
		ev := postCreatedEvent{
			EventID:   uuid.NewString(),
			Type:      "post.created",
			PostID:    p.ID,
			UserID:    p.UserID,
			CreatedAt: p.CreatedAt,
		}
		if err := s.events.WriteJSON(ctx, ev); err != nil {
			log.Printf("publish post.created: %v", err)
		}
	}
	return &PostView{Post: *p}, nil
}

func (s *service) List(ctx context.Context, forUserID string) ([]PostView, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	counts, err := s.likes.CountsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked := map[uint]bool{}
	if forUserID != "" {
		liked, err = s.likes.LikedBy(ctx, forUserID, ids)
		if err != nil {
			return nil, err
		}
	}
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = PostView{
			Post:      p,
			LikeCount: counts[p.ID],
			IsLiked:   liked[p.ID],
		}
	}
	return views, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.likes.DropPost(ctx, id); err != nil {
		log.Printf("drop like count for post %d: %v", id, err)
	}
	return nil
}

// normalize maps absent or blank optional fields to null.
func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
