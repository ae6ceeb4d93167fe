package repository

import (
	"chirp-go/internal/model"

	"gorm.io/gorm"
)

type FollowshipRepository struct {
	db *gorm.DB
}

func NewFollowshipRepository(db *gorm.DB) *FollowshipRepository {
	return &FollowshipRepository{db: db}
}

// Create 创建关注关系
func (r *FollowshipRepository) Create(followerID, followingID int64) (*model.Followship, error) {
	edge := &model.Followship{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := r.db.Create(edge).Error; err != nil {
		return nil, err
	}
	return edge, nil
}

// Delete 删除关注关系
func (r *FollowshipRepository) Delete(followerID, followingID int64) (bool, error) {
	result := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Followship{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查关注关系是否存在
func (r *FollowshipRepository) Exists(followerID, followingID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Followship{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// ListByFollower 获取某用户发出的全部关注边（按写入顺序）
func (r *FollowshipRepository) ListByFollower(userID int64) ([]model.Followship, error) {
	var edges []model.Followship
	err := r.db.Where("follower_id = ?", userID).
		Order("id ASC").
		Find(&edges).Error
	return edges, err
}

// ListByFollowing 获取指向某用户的全部关注边（按写入顺序）
func (r *FollowshipRepository) ListByFollowing(userID int64) ([]model.Followship, error) {
	var edges []model.Followship
	err := r.db.Where("following_id = ?", userID).
		Order("id ASC").
		Find(&edges).Error
	return edges, err
}

// ListFollowingIDs 获取某用户关注的用户 ID 列表
func (r *FollowshipRepository) ListFollowingIDs(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Followship{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

// CountFollowing 统计关注数
func (r *FollowshipRepository) CountFollowing(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Followship{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// CountFollowers 统计粉丝数
func (r *FollowshipRepository) CountFollowers(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Followship{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}
