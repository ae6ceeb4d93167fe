package handler

import (
	"strconv"

	"chirp-go/internal/api/response"
	"chirp-go/internal/service"
	"chirp-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchUsers 搜索用户
// @Summary 搜索用户
// @Description 按昵称/账号/介绍搜索用户，ES 不可用时降级到数据库
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param keyword query string true "搜索关键字"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=dto.SearchUsersData} "搜索成功"
// @Router /users/search [get]
func (h *SearchHandler) SearchUsers(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.BadRequest(c, "keyword 不能为空")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	data, err := h.searchService.SearchUsers(c.Request.Context(), keyword, page, pageSize)
	if err != nil {
		logger.Error("Search users failed", zap.String("keyword", keyword), zap.Error(err))
		response.InternalError(c, "搜索失败，请稍后重试")
		return
	}

	response.OK(c, "搜索成功", data)
}
