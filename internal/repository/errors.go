package repository

import "errors"

var (
	// ErrUserNotFound 用户不存在或未关联组织
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound 会话令牌不存在或已过期
	ErrSessionNotFound = errors.New("session not found")
)
