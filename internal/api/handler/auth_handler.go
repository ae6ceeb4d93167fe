package handler

import (
	"errors"

	"chirp-go/internal/api/dto"
	"chirp-go/internal/api/response"
	"chirp-go/internal/service"
	"chirp-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp 用户注册
// @Summary 用户注册
// @Description 注册新用户，account 和 email 不允许重复
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "注册信息"
// @Success 200 {object} response.Response "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效/密码不一致/昵称超长"
// @Failure 409 {object} response.ErrorResponse "account 或 email 已被注册"
// @Router /signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	if err := h.authService.SignUp(&req); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch), errors.Is(err, service.ErrNameTooLong):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrAccountRegistered), errors.Is(err, service.ErrEmailRegistered):
			response.Conflict(c, err.Error())
		default:
			logger.Error("Sign up failed", zap.Error(err))
			response.InternalError(c, "注册失败，请稍后重试")
		}
		return
	}

	response.OK(c, "注册成功", nil)
}

// SignIn 用户登录
// @Summary 用户登录
// @Description 账号密码登录，返回 JWT Token 和用户信息
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.TokenData} "登录成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "账号或密码错误"
// @Router /signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	tokenData, err := h.authService.SignIn(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("Sign in failed", zap.Error(err))
		response.InternalError(c, "登录失败，请稍后重试")
		return
	}

	response.OK(c, "登录成功", tokenData)
}
