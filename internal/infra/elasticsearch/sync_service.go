package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chirp-go/internal/model"
)

// ESUserDoc ES 用户文档结构
type ESUserDoc struct {
	ID            int64  `json:"id"`
	Account       string `json:"account"`
	Name          string `json:"name"`
	Introduction  string `json:"introduction"`
	Avatar        string `json:"avatar"`
	FollowerCount int64  `json:"follower_count"`
	UpdatedAt     string `json:"updated_at"`
}

func userToESDoc(u *model.User, followerCount int64) *ESUserDoc {
	return &ESUserDoc{
		ID:            u.ID,
		Account:       u.Account,
		Name:          u.Name,
		Introduction:  u.Introduction,
		Avatar:        u.Avatar,
		FollowerCount: followerCount,
		UpdatedAt:     time.Now().Format(time.RFC3339),
	}
}

// SyncUser 同步单个用户到 ES
func SyncUser(ctx context.Context, u *model.User, followerCount int64) error {
	doc := userToESDoc(u, followerCount)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, UsersIndexName(), fmt.Sprintf("%d", u.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index user %d failed: %s", u.ID, resp.String())
	}
	return nil
}

// DeleteUser 从 ES 删除用户文档
func DeleteUser(ctx context.Context, userID int64) error {
	resp, err := Delete(ctx, UsersIndexName(), fmt.Sprintf("%d", userID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 文档本来就不存在时不算失败
	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete user %d failed: %s", userID, resp.String())
	}
	return nil
}
