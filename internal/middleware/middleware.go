package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"noticeboard/internal/api/response"
	"noticeboard/internal/constants"
	"noticeboard/internal/i18n"
	"noticeboard/internal/metrics"
	"noticeboard/pkg/logger"
)

// Logger 访问日志中间件，同时记录请求计数
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		status := c.Writer.Status()

		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), status)
		log.Info("访问日志",
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", path,
		)
	}
}

// Recovery 恢复中间件
func Recovery(log *logger.Logger, translator i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("服务器错误", "panic", err, "path", c.Request.URL.Path)
				response.Fail(c, http.StatusInternalServerError, translator.Translate(c, constants.MsgServerError))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// CORS 跨域中间件，只开放读取
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Accept-Language, Authorization, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Locale 根据 Accept-Language 选择翻译器并存入上下文
func Locale(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextTranslatorKey, bundle.Negotiate(c.GetHeader("Accept-Language")))
		c.Next()
	}
}
