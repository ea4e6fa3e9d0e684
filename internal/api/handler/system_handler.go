package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"noticeboard/pkg/logger"
)

// HealthCheck 单个依赖的健康检查
type HealthCheck func(ctx context.Context) error

// SystemHandler 系统状态处理器
type SystemHandler struct {
	checks map[string]HealthCheck
	logger *logger.Logger
}

// NewSystemHandler 创建系统状态处理器实例
func NewSystemHandler(checks map[string]HealthCheck, logger *logger.Logger) *SystemHandler {
	return &SystemHandler{
		checks: checks,
		logger: logger,
	}
}

// Health 检查MySQL与Redis连接
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{} "正常"
// @Failure 503 {object} map[string]interface{} "依赖不可用"
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := gin.H{}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Error("健康检查失败", "dependency", name, "error", err)
			failed[name] = err.Error()
		}
	}

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "errors": failed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
