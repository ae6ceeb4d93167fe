package dto

// ProfileInfo 个人页信息（公开字段 + 统计 + 与登录者的关注关系）
type ProfileInfo struct {
	UserInfo
	TweetCount     int64 `json:"tweet_count"`
	FollowingCount int64 `json:"following_count"`
	FollowerCount  int64 `json:"follower_count"`
	IsFollowed     bool  `json:"is_followed"`
}

// UserUpdateRequest 个人资料更新请求（multipart 文本字段，均可缺省）
type UserUpdateRequest struct {
	Account      *string `form:"account" binding:"omitempty,min=1,max=255"`
	Name         *string `form:"name" binding:"omitempty,max=50"`
	Email        *string `form:"email" binding:"omitempty,email,max=255"`
	Introduction *string `form:"introduction" binding:"omitempty,max=160"`
}

// SearchUsersData 用户搜索结果
type SearchUsersData struct {
	Users    []UserInfo `json:"users"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}
