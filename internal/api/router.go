package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"noticeboard/config"
	"noticeboard/internal/api/apis"
	"noticeboard/internal/api/handler"
	"noticeboard/internal/i18n"
	"noticeboard/internal/middleware"
	"noticeboard/internal/repository"
	"noticeboard/internal/service"
	"noticeboard/pkg/logger"
)

// SetupRouter 设置API路由
func SetupRouter(cfg *config.Config, logger *logger.Logger, db *sqlx.DB, redisClient *redis.Client, bundle *i18n.Bundle, loc *time.Location) *gin.Engine {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Locale(bundle))
	router.Use(middleware.Recovery(logger, bundle))
	router.Use(middleware.CORS())

	// 初始化存储库
	announcementRepo := repository.NewAnnouncementRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Session.KeyPrefix)

	// 初始化服务
	announcementService := service.NewAnnouncementService(announcementRepo, logger, loc)
	identityService := service.NewIdentityService(sessionRepo, userRepo, logger)

	// 初始化处理器
	announcementHandler := handler.NewAnnouncementHandler(announcementService, bundle, logger)
	systemHandler := handler.NewSystemHandler(map[string]handler.HealthCheck{
		"mysql": db.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}, logger)

	apis.RegisterSystemRoutes(router, systemHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API版本v1，全部需要认证
	v1 := router.Group("/api/v1")
	v1.Use(middleware.UserAuth(identityService, bundle))
	apis.RegisterAuthRoutes(v1, announcementHandler)

	return router
}
