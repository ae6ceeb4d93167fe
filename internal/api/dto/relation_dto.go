package dto

import "time"

// FollowListEntry 关注/粉丝列表中的一项。
// id 指向边上除被查看者以外的那一端，展示字段取自该用户。
type FollowListEntry struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	Introduction string    `json:"introduction"`
	FollowedAt   time.Time `json:"followed_at"`
	IsFollowed   bool      `json:"is_followed"`
}

// RankedUser 热门用户榜中的一项
type RankedUser struct {
	UserInfo
	FollowerCount int64 `json:"follower_count"`
	IsFollowed    bool  `json:"is_followed"`
}

// FollowResult 关注/取关操作结果
type FollowResult struct {
	FollowerID  int64 `json:"follower_id"`
	FollowingID int64 `json:"following_id"`
}
