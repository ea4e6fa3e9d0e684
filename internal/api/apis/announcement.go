package apis

import (
	"noticeboard/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// RegisterAnnouncementRoutes 注册公告相关路由（需要认证）
func RegisterAnnouncementRoutes(router *gin.RouterGroup, announcementHandler *handler.AnnouncementHandler) {
	announcements := router.Group("/announcements")
	{
		// 快捷菜单公告
		announcements.GET("/top", announcementHandler.GetTopAnnouncements)
	}
}
