package like

import (
	"errors"
	"time"
)

// Like rows are a set over (postId, userId): the composite unique index is
// what rejects a second like from the same user.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"uniqueIndex:idx_likes_post_user;index" json:"postId"`
	UserID    string    `gorm:"size:64;uniqueIndex:idx_likes_post_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

var ErrAlreadyLiked = errors.New("already liked")

type LikeRequest struct {
	UserID string `json:"userId"`
}

type LikeResponse struct {
	PostID    uint  `json:"postId"`
	LikeCount int64 `json:"likeCount"`
	IsLiked   bool  `json:"isLiked"`
}
