package repository

import (
	"chirp-go/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDWithRelations 根据 ID 查询用户并加载关注/粉丝关联
func (r *UserRepository) GetByIDWithRelations(id int64) (*model.User, error) {
	var user model.User
	err := r.db.
		Preload("Followings").
		Preload("Followers").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAccount 根据账号查询用户，未命中返回 (nil, nil)
func (r *UserRepository) GetByAccount(account string) (*model.User, error) {
	var user model.User
	err := r.db.Where("account = ?", account).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail 根据邮箱查询用户，未命中返回 (nil, nil)
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByAccountAndRole 根据账号和角色查询用户（登录用）
func (r *UserRepository) GetByAccountAndRole(account, role string) (*model.User, error) {
	var user model.User
	err := r.db.Where("account = ? AND role = ?", account, role).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户字段（传入 map，只更新给定字段）
func (r *UserRepository) Update(id int64, updates map[string]interface{}) (*model.User, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// ListAllWithFollowers 查询全部用户并加载粉丝关联（热门榜用）
func (r *UserRepository) ListAllWithFollowers() ([]model.User, error) {
	var users []model.User
	err := r.db.Preload("Followers").Find(&users).Error
	return users, err
}

// SearchByKeyword 按昵称/账号/介绍模糊搜索（ES 不可用时的兜底路径）
func (r *UserRepository) SearchByKeyword(keyword string, skip, limit int) ([]model.User, int64, error) {
	pattern := "%" + keyword + "%"
	query := r.db.Model(&model.User{}).
		Where("name ILIKE ? OR account ILIKE ? OR introduction ILIKE ?", pattern, pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := query.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
