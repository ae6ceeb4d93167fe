package service

import (
	"context"
	"errors"
	"sort"

	"chirp-go/internal/api/dto"
	"chirp-go/internal/cache"
	infraKafka "chirp-go/internal/infra/kafka"
	"chirp-go/internal/model"
	"chirp-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCannotFollowSelf = errors.New("不能关注自己")
	ErrAlreadyFollowed  = errors.New("已经关注过该用户")
	ErrNotFollowed      = errors.New("尚未关注该用户")
)

// 热门用户榜长度上限
const topUsersLimit = 9

type RelationService struct {
	followRepo *repository.FollowshipRepository
	userRepo   *repository.UserRepository
	topCache   *cache.TopUsersCache // 可为 nil
	publisher  EventPublisher
}

func NewRelationService(
	followRepo *repository.FollowshipRepository,
	userRepo *repository.UserRepository,
	topCache *cache.TopUsersCache,
	publisher EventPublisher,
) *RelationService {
	return &RelationService{
		followRepo: followRepo,
		userRepo:   userRepo,
		topCache:   topCache,
		publisher:  publisher,
	}
}

// Follow 关注用户
func (s *RelationService) Follow(viewerID, targetID int64) (*dto.FollowResult, error) {
	if viewerID == targetID {
		return nil, ErrCannotFollowSelf
	}

	if _, err := s.userRepo.GetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.followRepo.Exists(viewerID, targetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFollowed
	}

	if _, err := s.followRepo.Create(viewerID, targetID); err != nil {
		return nil, err
	}

	s.invalidateTopUsers()
	publishEvent(s.publisher, infraKafka.EventUserFollowed, viewerID, targetID)

	return &dto.FollowResult{FollowerID: viewerID, FollowingID: targetID}, nil
}

// Unfollow 取消关注
func (s *RelationService) Unfollow(viewerID, targetID int64) (*dto.FollowResult, error) {
	deleted, err := s.followRepo.Delete(viewerID, targetID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrNotFollowed
	}

	s.invalidateTopUsers()
	publishEvent(s.publisher, infraKafka.EventUserUnfollowed, viewerID, targetID)

	return &dto.FollowResult{FollowerID: viewerID, FollowingID: targetID}, nil
}

// GetFollowings 获取某用户的关注列表（携带对方展示字段与登录者的关注状态）
func (s *RelationService) GetFollowings(subjectID int64, viewerFollowing map[int64]bool) ([]dto.FollowListEntry, error) {
	subject, err := s.userRepo.GetByIDWithRelations(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	edges, err := s.followRepo.ListByFollower(subjectID)
	if err != nil {
		return nil, err
	}

	return buildFollowList(edges, subject.Followings, viewerFollowing, func(e model.Followship) int64 {
		return e.FollowingID
	}), nil
}

// GetFollowers 获取某用户的粉丝列表
func (s *RelationService) GetFollowers(subjectID int64, viewerFollowing map[int64]bool) ([]dto.FollowListEntry, error) {
	subject, err := s.userRepo.GetByIDWithRelations(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	edges, err := s.followRepo.ListByFollowing(subjectID)
	if err != nil {
		return nil, err
	}

	return buildFollowList(edges, subject.Followers, viewerFollowing, func(e model.Followship) int64 {
		return e.FollowerID
	}), nil
}

// buildFollowList 把关注边和对端用户资料合并成列表。
// 资料先按用户 id 建索引再按边上的对端 id 取值，保证展示字段
// 一定属于边指向的那个用户；输出顺序跟随边的写入顺序。
func buildFollowList(
	edges []model.Followship,
	relation []model.User,
	viewerFollowing map[int64]bool,
	otherEnd func(model.Followship) int64,
) []dto.FollowListEntry {
	profiles := make(map[int64]*model.User, len(relation))
	for i := range relation {
		profiles[relation[i].ID] = &relation[i]
	}

	entries := make([]dto.FollowListEntry, 0, len(edges))
	for _, edge := range edges {
		id := otherEnd(edge)
		entry := dto.FollowListEntry{
			ID:         id,
			FollowedAt: edge.CreatedAt,
			IsFollowed: viewerFollowing[id],
		}
		if p, ok := profiles[id]; ok {
			entry.Name = p.Name
			entry.Avatar = p.Avatar
			entry.Introduction = p.Introduction
		}
		entries = append(entries, entry)
	}
	return entries
}

// GetTopUsers 获取热门用户榜：按粉丝数降序，截断到榜单上限。
// 与登录者无关的部分（排名和计数）可走缓存，is_followed 每次按请求补上。
func (s *RelationService) GetTopUsers(viewerFollowing map[int64]bool) ([]dto.RankedUser, error) {
	base, ok := s.cachedTopUsers()
	if !ok {
		users, err := s.userRepo.ListAllWithFollowers()
		if err != nil {
			return nil, err
		}

		base = make([]cache.RankedEntry, 0, len(users))
		for i := range users {
			entry := cache.RankedEntry{
				User:          users[i],
				FollowerCount: int64(len(users[i].Followers)),
			}
			// 缓存里不放关联数据
			entry.User.Followers = nil
			entry.User.Followings = nil
			entry.User.Tweets = nil
			base = append(base, entry)
		}

		sort.SliceStable(base, func(i, j int) bool {
			return base[i].FollowerCount > base[j].FollowerCount
		})
		if len(base) > topUsersLimit {
			base = base[:topUsersLimit]
		}

		s.storeTopUsers(base)
	}

	result := make([]dto.RankedUser, 0, len(base))
	for i := range base {
		result = append(result, dto.RankedUser{
			UserInfo:      *toUserInfo(&base[i].User),
			FollowerCount: base[i].FollowerCount,
			IsFollowed:    viewerFollowing[base[i].User.ID],
		})
	}
	return result, nil
}

func (s *RelationService) cachedTopUsers() ([]cache.RankedEntry, bool) {
	if s.topCache == nil {
		return nil, false
	}
	return s.topCache.Get(context.Background())
}

func (s *RelationService) storeTopUsers(entries []cache.RankedEntry) {
	if s.topCache == nil {
		return
	}
	s.topCache.Set(context.Background(), entries)
}

func (s *RelationService) invalidateTopUsers() {
	if s.topCache == nil {
		return
	}
	s.topCache.Invalidate(context.Background())
}
