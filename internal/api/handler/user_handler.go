package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"chirp-go/internal/api/dto"
	"chirp-go/internal/api/middleware"
	"chirp-go/internal/api/response"
	infraMinio "chirp-go/internal/infra/minio"
	"chirp-go/internal/service"
	"chirp-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 头像和封面各自的存储 Bucket
const (
	avatarBucket = "avatars"
	coverBucket  = "covers"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser 获取个人页信息
// @Summary 获取指定用户的个人页
// @Description 返回用户公开信息、推文/关注/粉丝计数和登录者的关注状态
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.ProfileInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	targetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	info, err := h.userService.GetProfile(targetID, middleware.GetViewerFollowing(c))
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// UpdateUser 更新个人资料
// @Summary 更新个人资料
// @Description multipart 表单；avatar/cover 文件均可缺省，缺省时保留原值
// @Tags 用户
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Failure 403 {object} response.ErrorResponse "只能修改自己的资料"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	targetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	viewerID, _ := middleware.GetCurrentUserID(c)
	if viewerID != targetID {
		response.Forbidden(c, "只能修改自己的资料")
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	// 两个上传字段相互独立：各自解析，缺省时传 nil 给服务层
	avatarURL, err := resolveUpload(c, "avatar", avatarBucket, targetID)
	if err != nil {
		logger.Error("Avatar upload failed", zap.Int64("user_id", targetID), zap.Error(err))
		response.InternalError(c, "头像上传失败")
		return
	}
	coverURL, err := resolveUpload(c, "cover", coverBucket, targetID)
	if err != nil {
		logger.Error("Cover upload failed", zap.Int64("user_id", targetID), zap.Error(err))
		response.InternalError(c, "封面上传失败")
		return
	}

	info, err := h.userService.UpdateProfile(targetID, &req, avatarURL, coverURL)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "更新成功", info)
}

// resolveUpload 解析一个可缺省的上传字段。
// 字段不存在返回 (nil, nil)；存在则上传到 MinIO 并返回访问 URL。
func resolveUpload(c *gin.Context, field, bucket string, userID int64) (*string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	objectName := fmt.Sprintf("%d/%d%s", userID, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	url, err := infraMinio.UploadImage(
		c.Request.Context(),
		bucket,
		objectName,
		file,
		fileHeader.Size,
		contentTypeOf(fileHeader),
	)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

func contentTypeOf(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// parseIDParam 从 URL 路径参数中解析 int64 ID
func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAccountRegistered), errors.Is(err, service.ErrEmailRegistered):
		response.Conflict(c, err.Error())
	default:
		logger.Error("User request failed", zap.Error(err))
		response.InternalError(c, "服务内部错误")
	}
}
