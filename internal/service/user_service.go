package service

import (
	"errors"

	"chirp-go/internal/api/dto"
	infraKafka "chirp-go/internal/infra/kafka"
	"chirp-go/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo   *repository.UserRepository
	followRepo *repository.FollowshipRepository
	tweetRepo  *repository.TweetRepository
	publisher  EventPublisher
}

func NewUserService(
	userRepo *repository.UserRepository,
	followRepo *repository.FollowshipRepository,
	tweetRepo *repository.TweetRepository,
	publisher EventPublisher,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		tweetRepo:  tweetRepo,
		publisher:  publisher,
	}
}

// GetProfile 获取个人页信息：公开字段 + 推文/关注/粉丝计数 + 登录者是否已关注
func (s *UserService) GetProfile(id int64, viewerFollowing map[int64]bool) (*dto.ProfileInfo, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	tweetCount, err := s.tweetRepo.CountByUser(id)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(id)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.followRepo.CountFollowers(id)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileInfo{
		UserInfo:       *toUserInfo(user),
		TweetCount:     tweetCount,
		FollowingCount: followingCount,
		FollowerCount:  followerCount,
		IsFollowed:     viewerFollowing[user.ID],
	}, nil
}

// UpdateProfile 更新个人资料。
// avatarURL/coverURL 为已上传文件的访问地址，为 nil 表示本次未上传、保留原值。
func (s *UserService) UpdateProfile(id int64, req *dto.UserUpdateRequest, avatarURL, coverURL *string) (*dto.UserInfo, error) {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Account != nil {
		updates["account"] = *req.Account
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Introduction != nil {
		updates["introduction"] = *req.Introduction
	}
	if avatarURL != nil && *avatarURL != "" {
		updates["avatar"] = *avatarURL
	}
	if coverURL != nil && *coverURL != "" {
		updates["cover"] = *coverURL
	}

	if len(updates) == 0 {
		user, err := s.userRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		return toUserInfo(user), nil
	}

	user, err := s.userRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	publishEvent(s.publisher, infraKafka.EventUserUpdated, user.ID, 0)
	return toUserInfo(user), nil
}
