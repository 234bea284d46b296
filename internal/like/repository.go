package like

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Repository interface {
	// Like inserts the (postID, userID) row and returns the fresh like count.
	// Returns ErrAlreadyLiked when the pair already exists.
	Like(ctx context.Context, postID uint, userID string) (int64, error)
	// Unlike removes the pair if present and returns the like count.
	// Removing nothing is not an error.
	Unlike(ctx context.Context, postID uint, userID string) (int64, error)
	CountsFor(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	LikedBy(ctx context.Context, userID string, postIDs []uint) (map[uint]bool, error)
	DropCount(ctx context.Context, postID uint) error
}

type repo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRepository(db *gorm.DB, rdb *redis.Client) Repository {
	return &repo{db: db, rdb: rdb}
}

func likeKey(postID uint) string { return fmt.Sprintf("feed:likes:%d", postID) }

func (r *repo) Like(ctx context.Context, postID uint, userID string) (int64, error) {
	err := r.db.WithContext(ctx).Create(&Like{PostID: postID, UserID: userID}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrAlreadyLiked
		}
		return 0, err
	}
	n, err := r.rdb.Incr(ctx, likeKey(postID)).Result()
	if err != nil || n <= 1 {
		// cold or drifted key, resync from the table
		return r.syncCount(ctx, postID)
	}
	return n, nil
}

func (r *repo) Unlike(ctx context.Context, postID uint, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&Like{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return r.currentCount(ctx, postID)
	}
	n, err := r.rdb.Decr(ctx, likeKey(postID)).Result()
	if err != nil || n < 0 {
		return r.syncCount(ctx, postID)
	}
	return n, nil
}

func (r *repo) CountsFor(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		PostID uint
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&Like{}).
		Select("post_id, count(*) as n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = row.N
	}
	return out, nil
}

func (r *repo) LikedBy(ctx context.Context, userID string, postIDs []uint) (map[uint]bool, error) {
	out := make(map[uint]bool, len(postIDs))
	if userID == "" || len(postIDs) == 0 {
		return out, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *repo) DropCount(ctx context.Context, postID uint) error {
	return r.rdb.Del(ctx, likeKey(postID)).Err()
}

func (r *repo) currentCount(ctx context.Context, postID uint) (int64, error) {
	n, err := r.rdb.Get(ctx, likeKey(postID)).Int64()
	if err != nil {
		return r.syncCount(ctx, postID)
	}
	return n, nil
}

func (r *repo) syncCount(ctx context.Context, postID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Like{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	_ = r.rdb.Set(ctx, likeKey(postID), n, 0).Err()
	return n, nil
}
