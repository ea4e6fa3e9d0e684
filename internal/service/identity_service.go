package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"noticeboard/internal/model"
	"noticeboard/internal/repository"
	"noticeboard/pkg/logger"
)

// SessionStore 会话令牌存储
type SessionStore interface {
	UserIDByToken(ctx context.Context, token string) (int64, error)
}

// IdentityService 解析请求令牌得到调用者身份
// 先查Redis会话，未命中时再按长期API令牌查询 users 表
type IdentityService struct {
	sessions SessionStore
	users    repository.UserRepository
	logger   *logger.Logger
}

// NewIdentityService 创建身份服务实例
func NewIdentityService(sessions SessionStore, users repository.UserRepository, logger *logger.Logger) *IdentityService {
	return &IdentityService{
		sessions: sessions,
		users:    users,
		logger:   logger,
	}
}

// NormalizeToken 去除空白与可选的 "Bearer " 前缀
func NormalizeToken(raw string) string {
	token := strings.TrimLeft(raw, " \t")
	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}
	return strings.TrimSpace(token)
}

// ResolveByToken 解析令牌对应的调用者
func (s *IdentityService) ResolveByToken(ctx context.Context, rawToken string) (*model.Caller, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := s.sessions.UserIDByToken(ctx, token)
	if errors.Is(err, repository.ErrSessionNotFound) {
		userID, err = s.users.GetUserIDByToken(ctx, token)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
	}
	if err != nil {
		s.logger.Error("解析令牌失败", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	caller, err := s.users.GetCallerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("令牌对应的用户不存在", "user_id", userID)
			return nil, ErrUnauthenticated
		}
		s.logger.Error("获取用户身份失败", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if !caller.IsActive() {
		s.logger.Warn("用户已被禁用", "user_id", userID, "status", caller.Status)
		return nil, ErrUnauthenticated
	}

	return caller, nil
}
