package service

import (
	"errors"
	"unicode/utf8"

	"chirp-go/internal/api/dto"
	"chirp-go/internal/auth"
	infraKafka "chirp-go/internal/infra/kafka"
	"chirp-go/internal/model"
	"chirp-go/internal/repository"
	"chirp-go/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrInvalidCredential = errors.New("账号不存在")
	ErrPasswordMismatch  = errors.New("密码与确认密码不一致")
	ErrNameTooLong       = errors.New("昵称字数超出上限")
	ErrAccountRegistered = errors.New("account 已重复注册")
	ErrEmailRegistered   = errors.New("email 已重复注册")
)

// 昵称长度上限（按字符数计）
const maxNameLength = 50

type AuthService struct {
	userRepo  *repository.UserRepository
	jwt       *auth.JWTService
	publisher EventPublisher
}

func NewAuthService(userRepo *repository.UserRepository, jwtService *auth.JWTService, publisher EventPublisher) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwt:       jwtService,
		publisher: publisher,
	}
}

// SignUp 用户注册。
// account 和 email 分别独立查重，两个查询可能命中不同的已有记录，
// 冲突字段按固定顺序裁决。校验失败时不产生任何写入。
func (s *AuthService) SignUp(req *dto.SignUpRequest) error {
	if req.Password != req.CheckPassword {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(req.Name) > maxNameLength {
		return ErrNameTooLong
	}

	byAccount, err := s.userRepo.GetByAccount(req.Account)
	if err != nil {
		return err
	}
	byEmail, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return err
	}

	switch {
	case byAccount == nil && byEmail == nil:
		// 均未命中，走创建
	case byAccount == nil || byEmail == nil:
		// 恰有一个命中，命中的一侧即冲突字段
		if byEmail == nil {
			return ErrAccountRegistered
		}
		return ErrEmailRegistered
	default:
		// 两个查询都命中，逐字段比对确定真正冲突的字段
		if byAccount.Account == req.Account {
			return ErrAccountRegistered
		}
		if byEmail.Email == req.Email {
			return ErrEmailRegistered
		}
		// 双命中但提交值与两条记录的字段都不相等：按成功返回，不创建用户
		return nil
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Account:  req.Account,
		Email:    req.Email,
		Name:     req.Name,
		Password: hashed,
		Role:     "user",
	}
	if err := s.userRepo.Create(user); err != nil {
		return err
	}

	publishEvent(s.publisher, infraKafka.EventUserRegistered, user.ID, 0)
	return nil
}

// SignIn 用户登录，返回 token 数据。
// 账号不存在与密码错误返回同一错误，避免泄露账号是否存在。
func (s *AuthService) SignIn(req *dto.SignInRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByAccountAndRole(req.Account, "user")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.jwt.ExpireSeconds(),
		User:      *toUserInfo(user),
	}, nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:           user.ID,
		Account:      user.Account,
		Email:        user.Email,
		Name:         user.Name,
		Avatar:       user.Avatar,
		Cover:        user.Cover,
		Introduction: user.Introduction,
		Role:         user.Role,
	}
}
