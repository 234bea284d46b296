package post

import (
	"errors"
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  *string   `gorm:"size:512" json:"imageUrl"`
	UserID    *string   `gorm:"size:64;index" json:"userId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	ErrEmptyContent = errors.New("content is required")
	ErrNotFound     = errors.New("post not found")
)

type CreatePostRequest struct {
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl"`
	UserID   *string `json:"userId"`
}

// PostView is a Post plus the like metadata every list entry carries.
type PostView struct {
	Post
	LikeCount int64 `json:"likeCount"`
	IsLiked   bool  `json:"isLiked"`
}
