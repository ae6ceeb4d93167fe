package service

import (
	"fmt"
	"testing"
	"time"

	"chirp-go/internal/cache"
	"chirp-go/internal/model"
	"chirp-go/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRelationService(t *testing.T, db *gorm.DB, topCache *cache.TopUsersCache) *RelationService {
	t.Helper()
	return NewRelationService(
		repository.NewFollowshipRepository(db),
		repository.NewUserRepository(db),
		topCache,
		nil,
	)
}

func TestRelationService_Follow(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationService(t, db, nil)

	alice := seedUser(t, db, "alice", "password123")
	bob := seedUser(t, db, "bob", "password123")

	result, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, result.FollowerID)
	assert.Equal(t, bob.ID, result.FollowingID)

	// 重复关注
	_, err = svc.Follow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowed)

	// 关注自己
	_, err = svc.Follow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrCannotFollowSelf)

	// 目标不存在
	_, err = svc.Follow(alice.ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRelationService_Unfollow(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationService(t, db, nil)

	alice := seedUser(t, db, "alice", "password123")
	bob := seedUser(t, db, "bob", "password123")

	// 未关注就取关
	_, err := svc.Unfollow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFollowed)

	_, err = svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	result, err := svc.Unfollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, result.FollowerID)
	assert.Equal(t, bob.ID, result.FollowingID)

	// 取关后再取关
	_, err = svc.Unfollow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFollowed)
}

func TestRelationService_FollowLists(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationService(t, db, nil)

	alice := seedUser(t, db, "alice", "password123")
	bob := seedUser(t, db, "bob", "password123")
	carol := seedUser(t, db, "carol", "password123")

	// alice -> bob, bob -> carol
	_, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.Follow(bob.ID, carol.ID)
	require.NoError(t, err)

	// 以 alice 的视角看 bob：alice 只关注了 bob
	viewerFollowing := map[int64]bool{bob.ID: true}

	followings, err := svc.GetFollowings(bob.ID, viewerFollowing)
	require.NoError(t, err)
	require.Len(t, followings, 1)
	assert.Equal(t, carol.ID, followings[0].ID)
	assert.Equal(t, "carol", followings[0].Name)
	assert.False(t, followings[0].IsFollowed)
	assert.False(t, followings[0].FollowedAt.IsZero())

	followers, err := svc.GetFollowers(bob.ID, viewerFollowing)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].ID)
	assert.Equal(t, "alice", followers[0].Name)
	assert.False(t, followers[0].IsFollowed)

	// carol 的粉丝列表里 bob 带上 alice 的关注状态
	followers, err = svc.GetFollowers(carol.ID, viewerFollowing)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, bob.ID, followers[0].ID)
	assert.True(t, followers[0].IsFollowed)
}

func TestRelationService_FollowLists_Order(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationService(t, db, nil)

	alice := seedUser(t, db, "alice", "password123")
	targets := make([]*model.User, 0, 3)
	for _, account := range []string{"bob", "carol", "dave"} {
		targets = append(targets, seedUser(t, db, account, "password123"))
	}

	for _, target := range targets {
		_, err := svc.Follow(alice.ID, target.ID)
		require.NoError(t, err)
	}

	// 列表顺序跟随关注顺序，展示字段属于对应的那个用户
	entries, err := svc.GetFollowings(alice.ID, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, target := range targets {
		assert.Equal(t, target.ID, entries[i].ID)
		assert.Equal(t, target.Name, entries[i].Name)
	}
}

func TestRelationService_FollowLists_UserNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationService(t, db, nil)

	_, err := svc.GetFollowings(9999, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetFollowers(9999, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// seedRankedGraph 创建 n 个用户，第 i 个用户（从 0 计）有 i 个粉丝
func seedRankedGraph(t *testing.T, db *gorm.DB, svc *RelationService, n int) []*model.User {
	t.Helper()

	users := make([]*model.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, seedUser(t, db, fmt.Sprintf("user%02d", i), "password123"))
	}
	for i, target := range users {
		for j := 0; j < i; j++ {
			_, err := svc.Follow(users[j].ID, target.ID)
			require.NoError(t, err)
		}
	}
	return users
}

func TestRelationService_GetTopUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationService(t, db, nil)

	users := seedRankedGraph(t, db, svc, 12)

	viewerFollowing := map[int64]bool{users[11].ID: true}
	ranked, err := svc.GetTopUsers(viewerFollowing)
	require.NoError(t, err)

	// 12 个用户只取前 9 名
	require.Len(t, ranked, 9)

	// 粉丝数降序
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].FollowerCount, ranked[i].FollowerCount)
	}

	// 榜首是粉丝最多的用户，带上登录者的关注状态
	assert.Equal(t, users[11].ID, ranked[0].ID)
	assert.Equal(t, int64(11), ranked[0].FollowerCount)
	assert.True(t, ranked[0].IsFollowed)
	assert.False(t, ranked[1].IsFollowed)
}

func TestRelationService_GetTopUsers_FewerThanLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationService(t, db, nil)

	seedRankedGraph(t, db, svc, 4)

	ranked, err := svc.GetTopUsers(nil)
	require.NoError(t, err)
	assert.Len(t, ranked, 4)
}

func TestRelationService_GetTopUsers_CacheInvalidation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	topCache := cache.NewTopUsersCache(client, time.Minute)

	db := newTestDB(t)
	svc := newRelationService(t, db, topCache)

	alice := seedUser(t, db, "alice", "password123")
	bob := seedUser(t, db, "bob", "password123")
	carol := seedUser(t, db, "carol", "password123")

	_, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	ranked, err := svc.GetTopUsers(nil)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, bob.ID, ranked[0].ID)

	// 新关注使缓存失效，下一次读取反映新的粉丝数
	_, err = svc.Follow(alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = svc.Follow(bob.ID, carol.ID)
	require.NoError(t, err)

	ranked, err = svc.GetTopUsers(nil)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, carol.ID, ranked[0].ID)
	assert.Equal(t, int64(2), ranked[0].FollowerCount)
}
