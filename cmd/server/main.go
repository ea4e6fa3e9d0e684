package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noticeboard/config"
	"noticeboard/internal/api"
	"noticeboard/internal/i18n"
	"noticeboard/pkg/database"
	"noticeboard/pkg/logger"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("加载时区失败: %v", err)
	}

	// 初始化日志
	logger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()

	// 初始化数据库连接
	db, err := database.NewMySQLConnection(cfg.Database, loc)
	if err != nil {
		logger.Fatal("无法链接到数据库", err)
	}
	defer db.Close()

	// 初始化Redis连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	cancel()
	if err != nil {
		logger.Fatal("无法链接到Redis", err)
	}
	defer redisClient.Close()

	bundle, err := i18n.New(cfg.DefaultLocale)
	if err != nil {
		logger.Fatal("加载翻译失败", err)
	}

	router := api.SetupRouter(cfg, logger, db, redisClient, bundle, loc)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("服务器启动", "port", cfg.APIPort, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("启动服务器失败", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器被强制关闭", err)
	}

	logger.Info("服务器已正常退出")
}
