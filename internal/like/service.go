package like

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"social-feed-service/internal/kafka"
)

type Service interface {
	Like(ctx context.Context, postID uint, userID string) (int64, error)
	Unlike(ctx context.Context, postID uint, userID string) (int64, error)
	CountsFor(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	LikedBy(ctx context.Context, userID string, postIDs []uint) (map[uint]bool, error)
	DropPost(ctx context.Context, postID uint) error
}

type service struct {
	repo   Repository
	events kafka.Writer
}

// NewService builds the like service. events may be nil, in which case no
// post.liked events are published.
func NewService(r Repository, events kafka.Writer) Service {
	return &service{repo: r, events: events}
}

type postLikedEvent struct {
	EventID   string    `json:"eventId"`
	Type      string    `json:"type"`
	PostID    uint      `json:"postId"`
	UserID    string    `json:"userId"`
	LikeCount int64     `json:"likeCount"`
	At        time.Time `json:"at"`
}

func (s *service) Like(ctx context.Context, postID uint, userID string) (int64, error) {
	n, err := s.repo.Like(ctx, postID, userID)
	if err != nil {
		return 0, err
	}
	if s.events != nil {
		ev := postLikedEvent{
			EventID:   uuid.NewString(),
			Type:      "post.liked",
			PostID:    postID,
			UserID:    userID,
			LikeCount: n,
			At:        time.Now().UTC(),
		}
		if err := s.events.WriteJSON(ctx, ev); err != nil {
			log.Printf("publish post.liked: %v", err)
		}
	}
	return n, nil
}

func (s *service) Unlike(ctx context.Context, postID uint, userID string) (int64, error) {
	return s.repo.Unlike(ctx, postID, userID)
}

func (s *service) CountsFor(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	return s.repo.CountsFor(ctx, postIDs)
}

func (s *service) LikedBy(ctx context.Context, userID string, postIDs []uint) (map[uint]bool, error) {
	return s.repo.LikedBy(ctx, userID, postIDs)
}

func (s *service) DropPost(ctx context.Context, postID uint) error {
	return s.repo.DropCount(ctx, postID)
}
