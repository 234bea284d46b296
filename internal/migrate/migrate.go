package migrate

import (
	"gorm.io/gorm"

	"social-feed-service/internal/like"
	"social-feed-service/internal/post"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(&post.Post{}, &like.Like{})
}
