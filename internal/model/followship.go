package model

import (
	"time"

	"gorm.io/gorm"
)

// Followship 关注关系（有向边：follower 关注 following）
type Followship struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:关系id" json:"id"`
	FollowerID  int64     `gorm:"not null;uniqueIndex:idx_unique_followship;index:idx_follower_id;comment:关注者id" json:"follower_id"`
	FollowingID int64     `gorm:"not null;uniqueIndex:idx_unique_followship;index:idx_following_id;comment:被关注者id" json:"following_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:关注时间" json:"created_at"`
}

func (Followship) TableName() string {
	return "followships"
}

// SetupJoinTables 把 followships 注册为 User 关联的连接表。
// 必须在 AutoMigrate 之前调用，否则 gorm 会生成自己的连接表结构。
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&User{}, "Followings", &Followship{}); err != nil {
		return err
	}
	return db.SetupJoinTable(&User{}, "Followers", &Followship{})
}
