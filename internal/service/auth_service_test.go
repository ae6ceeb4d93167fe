package service

import (
	"strings"
	"testing"
	"time"

	"chirp-go/internal/api/dto"
	"chirp-go/internal/auth"
	"chirp-go/internal/model"
	"chirp-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	jwtService := auth.NewJWTService("test-secret", "chirp-go-test", time.Hour)
	return NewAuthService(userRepo, jwtService, nil), userRepo
}

func signUpRequest(account, email string) *dto.SignUpRequest {
	return &dto.SignUpRequest{
		Account:       account,
		Name:          account,
		Email:         email,
		Password:      "password123",
		CheckPassword: "password123",
	}
}

func TestAuthService_SignUp(t *testing.T) {
	svc, userRepo := newAuthService(t)

	err := svc.SignUp(signUpRequest("alice", "alice@example.com"))
	require.NoError(t, err)

	user, err := userRepo.GetByAccount("alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Account)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "user", user.Role)

	// 落库的是哈希而不是明文
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"))
}

func TestAuthService_SignUp_PasswordMismatch(t *testing.T) {
	svc, userRepo := newAuthService(t)

	req := signUpRequest("alice", "alice@example.com")
	req.CheckPassword = "different"

	err := svc.SignUp(req)
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	user, err := userRepo.GetByAccount("alice")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthService_SignUp_NameTooLong(t *testing.T) {
	svc, _ := newAuthService(t)

	req := signUpRequest("alice", "alice@example.com")
	// 51 个多字节字符，长度按字符数而不是字节数计
	req.Name = strings.Repeat("昵", 51)

	err := svc.SignUp(req)
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestAuthService_SignUp_NameAtLimit(t *testing.T) {
	svc, _ := newAuthService(t)

	req := signUpRequest("alice", "alice@example.com")
	req.Name = strings.Repeat("昵", 50)

	assert.NoError(t, svc.SignUp(req))
}

func TestAuthService_SignUp_AccountConflict(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.SignUp(signUpRequest("alice", "alice@example.com")))

	// 同账号、不同邮箱
	err := svc.SignUp(signUpRequest("alice", "other@example.com"))
	assert.ErrorIs(t, err, ErrAccountRegistered)
}

func TestAuthService_SignUp_EmailConflict(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.SignUp(signUpRequest("alice", "alice@example.com")))

	// 不同账号、同邮箱
	err := svc.SignUp(signUpRequest("bob", "alice@example.com"))
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestAuthService_SignUp_DualHitAccountWins(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.SignUp(signUpRequest("alice", "alice@example.com")))
	require.NoError(t, svc.SignUp(signUpRequest("bob", "bob@example.com")))

	// 账号撞 alice、邮箱撞 bob：两个查询命中不同记录，按顺序先报账号冲突
	err := svc.SignUp(signUpRequest("alice", "bob@example.com"))
	assert.ErrorIs(t, err, ErrAccountRegistered)
}

func TestAuthService_SignIn(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.SignUp(signUpRequest("alice", "alice@example.com")))

	data, err := svc.SignIn(&dto.SignInRequest{Account: "alice", Password: "password123"})
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "bearer", data.TokenType)
	assert.Equal(t, int(time.Hour/time.Second), data.ExpiresIn)
	assert.Equal(t, "alice", data.User.Account)
	assert.Equal(t, "user", data.User.Role)

	// Token 能被同一密钥解析回用户 ID
	jwtService := auth.NewJWTService("test-secret", "chirp-go-test", time.Hour)
	claims, err := jwtService.Parse(data.Token)
	require.NoError(t, err)
	assert.Equal(t, data.User.ID, claims.UserID)
}

func TestAuthService_SignIn_UnknownAccount(t *testing.T) {
	svc, _ := newAuthService(t)

	data, err := svc.SignIn(&dto.SignInRequest{Account: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Nil(t, data)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.SignUp(signUpRequest("alice", "alice@example.com")))

	// 密码错误和账号不存在返回同一个错误
	data, err := svc.SignIn(&dto.SignInRequest{Account: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Nil(t, data)
}

func TestAuthService_SignIn_NonUserRole(t *testing.T) {
	svc, userRepo := newAuthService(t)

	// 管理员角色不能走用户端登录
	admin := &model.User{
		Account:  "root",
		Email:    "root@example.com",
		Name:     "root",
		Password: "x",
		Role:     "admin",
	}
	require.NoError(t, userRepo.Create(admin))

	data, err := svc.SignIn(&dto.SignInRequest{Account: "root", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Nil(t, data)
}
