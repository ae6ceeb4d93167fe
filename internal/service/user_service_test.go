package service

import (
	"testing"

	"chirp-go/internal/api/dto"
	"chirp-go/internal/model"
	"chirp-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T, db *gorm.DB) *UserService {
	t.Helper()
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewFollowshipRepository(db),
		repository.NewTweetRepository(db),
		nil,
	)
}

func strPtr(s string) *string { return &s }

func TestUserService_GetProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)
	relSvc := newRelationService(t, db, nil)

	alice := seedUser(t, db, "alice", "password123")
	bob := seedUser(t, db, "bob", "password123")
	carol := seedUser(t, db, "carol", "password123")

	// bob 发 2 条推文，关注 1 人，被 2 人关注
	for _, content := range []string{"hello", "world"} {
		require.NoError(t, db.Create(&model.Tweet{UserID: bob.ID, Content: content}).Error)
	}
	_, err := relSvc.Follow(bob.ID, carol.ID)
	require.NoError(t, err)
	_, err = relSvc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = relSvc.Follow(carol.ID, bob.ID)
	require.NoError(t, err)

	// alice 的视角
	profile, err := svc.GetProfile(bob.ID, map[int64]bool{bob.ID: true})
	require.NoError(t, err)

	assert.Equal(t, bob.ID, profile.ID)
	assert.Equal(t, "bob", profile.Account)
	assert.Equal(t, int64(2), profile.TweetCount)
	assert.Equal(t, int64(1), profile.FollowingCount)
	assert.Equal(t, int64(2), profile.FollowerCount)
	assert.True(t, profile.IsFollowed)

	// carol 没被 alice 关注
	profile, err = svc.GetProfile(carol.ID, map[int64]bool{bob.ID: true})
	require.NoError(t, err)
	assert.False(t, profile.IsFollowed)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	profile, err := svc.GetProfile(9999, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, profile)
}

func TestUserService_UpdateProfile_TextFields(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	alice := seedUser(t, db, "alice", "password123")

	info, err := svc.UpdateProfile(alice.ID, &dto.UserUpdateRequest{
		Name:         strPtr("Alice W"),
		Introduction: strPtr("hello there"),
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Alice W", info.Name)
	assert.Equal(t, "hello there", info.Introduction)
	// 未提交的字段保留原值
	assert.Equal(t, "alice", info.Account)
	assert.Equal(t, "alice@example.com", info.Email)
}

func TestUserService_UpdateProfile_AvatarKeepsCover(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	alice := seedUser(t, db, "alice", "password123")
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", alice.ID).
		Update("cover", "http://minio/covers/old.png").Error)

	// 只传头像，封面保留原值
	avatarURL := "http://minio/avatars/new.png"
	info, err := svc.UpdateProfile(alice.ID, &dto.UserUpdateRequest{}, &avatarURL, nil)
	require.NoError(t, err)

	assert.Equal(t, avatarURL, info.Avatar)
	assert.Equal(t, "http://minio/covers/old.png", info.Cover)
}

func TestUserService_UpdateProfile_NoFields(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	alice := seedUser(t, db, "alice", "password123")

	// 什么都没提交，原样返回
	info, err := svc.UpdateProfile(alice.ID, &dto.UserUpdateRequest{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Account)
	assert.Equal(t, "alice", info.Name)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	info, err := svc.UpdateProfile(9999, &dto.UserUpdateRequest{Name: strPtr("ghost")}, nil, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, info)
}
