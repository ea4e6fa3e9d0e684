package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"noticeboard/internal/api/response"
	"noticeboard/internal/constants"
	"noticeboard/internal/i18n"
	"noticeboard/internal/middleware"
	"noticeboard/internal/model"
	"noticeboard/internal/service"
	"noticeboard/pkg/logger"
)

// TopAnnouncementLister 顶部公告查询
type TopAnnouncementLister interface {
	ListTopAnnouncements(ctx context.Context, caller *model.Caller, now time.Time) ([]model.Announcement, error)
}

// AnnouncementHandler 公告处理器
type AnnouncementHandler struct {
	announcementService TopAnnouncementLister
	translator          i18n.Translator
	logger              *logger.Logger
}

// NewAnnouncementHandler 创建公告处理器实例
func NewAnnouncementHandler(announcementService TopAnnouncementLister, translator i18n.Translator, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		translator:          translator,
		logger:              logger,
	}
}

// GetTopAnnouncements 获取快捷菜单公告
// @Summary 获取快捷菜单公告
// @Description 返回昨天至今天内调用者可见的置顶公告，按创建时间倒序，最多5条
// @Tags 公告
// @Produce json
// @Param Authorization header string true "会话令牌或API令牌"
// @Success 200 {object} response.Body "成功"
// @Failure 401 {object} response.Body "未认证"
// @Failure 500 {object} response.Body "存储不可用"
// @Router /api/v1/announcements/top [get]
func (h *AnnouncementHandler) GetTopAnnouncements(c *gin.Context) {
	caller, _ := middleware.CallerFromContext(c)

	announcements, err := h.announcementService.ListTopAnnouncements(c.Request.Context(), caller, time.Time{})
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			response.Fail(c, http.StatusUnauthorized, h.translator.Translate(c, constants.MsgUnauthorized))
			return
		}
		h.logger.Error("获取顶部公告失败", "error", err)
		response.Fail(c, http.StatusInternalServerError, h.translator.Translate(c, constants.MsgServerError))
		return
	}

	response.Success(c, announcements, h.translator.Translate(c, constants.MsgSuccess))
}
