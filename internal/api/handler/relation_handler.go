package handler

import (
	"errors"

	"chirp-go/internal/api/middleware"
	"chirp-go/internal/api/response"
	"chirp-go/internal/service"
	"chirp-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RelationHandler struct {
	relationService *service.RelationService
}

func NewRelationHandler(relationService *service.RelationService) *RelationHandler {
	return &RelationHandler{relationService: relationService}
}

// Follow 关注用户
// @Summary 关注用户
// @Description 登录者关注指定用户
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "被关注用户ID"
// @Success 200 {object} response.Response{data=dto.FollowResult} "关注成功"
// @Failure 400 {object} response.ErrorResponse "不能关注自己/已关注"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /followships/{id} [post]
func (h *RelationHandler) Follow(c *gin.Context) {
	viewerID, _ := middleware.GetCurrentUserID(c)
	targetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	result, err := h.relationService.Follow(viewerID, targetID)
	if err != nil {
		handleRelationError(c, err)
		return
	}

	response.OK(c, "关注成功", result)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Description 登录者取消关注指定用户
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "被取消关注用户ID"
// @Success 200 {object} response.Response{data=dto.FollowResult} "取消关注成功"
// @Failure 400 {object} response.ErrorResponse "尚未关注该用户"
// @Router /followships/{id} [delete]
func (h *RelationHandler) Unfollow(c *gin.Context) {
	viewerID, _ := middleware.GetCurrentUserID(c)
	targetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	result, err := h.relationService.Unfollow(viewerID, targetID)
	if err != nil {
		handleRelationError(c, err)
		return
	}

	response.OK(c, "取消关注成功", result)
}

// GetFollowings 获取关注列表
// @Summary 获取用户关注列表
// @Description 返回指定用户关注的人，每项带展示字段和登录者的关注状态
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.FollowListEntry} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/followings [get]
func (h *RelationHandler) GetFollowings(c *gin.Context) {
	subjectID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	entries, err := h.relationService.GetFollowings(subjectID, middleware.GetViewerFollowing(c))
	if err != nil {
		handleRelationError(c, err)
		return
	}

	response.OK(c, "获取关注列表成功", entries)
}

// GetFollowers 获取粉丝列表
// @Summary 获取用户粉丝列表
// @Description 返回关注指定用户的人，每项带展示字段和登录者的关注状态
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.FollowListEntry} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/followers [get]
func (h *RelationHandler) GetFollowers(c *gin.Context) {
	subjectID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	entries, err := h.relationService.GetFollowers(subjectID, middleware.GetViewerFollowing(c))
	if err != nil {
		handleRelationError(c, err)
		return
	}

	response.OK(c, "获取粉丝列表成功", entries)
}

// GetTopUsers 获取热门用户榜
// @Summary 获取热门用户榜
// @Description 按粉丝数降序返回热门用户，带登录者的关注状态
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]dto.RankedUser} "获取成功"
// @Router /users/top [get]
func (h *RelationHandler) GetTopUsers(c *gin.Context) {
	result, err := h.relationService.GetTopUsers(middleware.GetViewerFollowing(c))
	if err != nil {
		handleRelationError(c, err)
		return
	}

	response.OK(c, "获取热门用户成功", result)
}

func handleRelationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCannotFollowSelf),
		errors.Is(err, service.ErrAlreadyFollowed),
		errors.Is(err, service.ErrNotFollowed):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Relation request failed", zap.Error(err))
		response.InternalError(c, "服务内部错误")
	}
}
