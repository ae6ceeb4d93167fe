package model

import "time"

// Tweet 推文模型（当前仅用于个人页的推文计数）
type Tweet struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:推文id" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_tweets_user_id;comment:作者id" json:"user_id"`
	Content   string    `gorm:"size:280;not null;comment:内容" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:发布时间" json:"created_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}
