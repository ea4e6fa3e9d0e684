package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"noticeboard/internal/api/response"
	"noticeboard/internal/constants"
	"noticeboard/internal/i18n"
	"noticeboard/internal/model"
	"noticeboard/internal/service"
)

// IdentityProvider 解析请求令牌得到调用者
type IdentityProvider interface {
	ResolveByToken(ctx context.Context, token string) (*model.Caller, error)
}

// UserAuth 用户认证中间件
func UserAuth(identity IdentityProvider, translator i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := identity.ResolveByToken(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				response.Fail(c, http.StatusUnauthorized, translator.Translate(c, constants.MsgUnauthorized))
			} else {
				response.Fail(c, http.StatusInternalServerError, translator.Translate(c, constants.MsgServerError))
			}
			c.Abort()
			return
		}

		// 调用者身份存入上下文，由处理器显式传给服务层
		c.Set(constants.ContextCallerKey, caller)
		c.Next()
	}
}

// CallerFromContext 获取认证中间件存入的调用者
func CallerFromContext(c *gin.Context) (*model.Caller, bool) {
	v, ok := c.Get(constants.ContextCallerKey)
	if !ok {
		return nil, false
	}
	caller, ok := v.(*model.Caller)
	return caller, ok && caller != nil
}
