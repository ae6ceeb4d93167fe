package repository

import (
	"chirp-go/internal/model"

	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

// Create 创建推文
func (r *TweetRepository) Create(tweet *model.Tweet) error {
	return r.db.Create(tweet).Error
}

// CountByUser 统计某用户的推文数
func (r *TweetRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Tweet{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
