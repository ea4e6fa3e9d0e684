package apis

import (
	"noticeboard/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册需要认证的API路由
func RegisterAuthRoutes(router *gin.RouterGroup, announcementHandler *handler.AnnouncementHandler) {
	RegisterAnnouncementRoutes(router, announcementHandler)
}

// RegisterSystemRoutes 注册系统路由（无需认证）
func RegisterSystemRoutes(router *gin.Engine, systemHandler *handler.SystemHandler) {
	router.GET("/health", systemHandler.Health)
}
