package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// SessionRepository Redis中的会话令牌，键为 前缀+令牌，值为用户ID
// 令牌由登录服务写入，本服务只读取
type SessionRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewSessionRepository 创建会话仓库实例
func NewSessionRepository(client *redis.Client, keyPrefix string) *SessionRepository {
	return &SessionRepository{client: client, keyPrefix: keyPrefix}
}

// UserIDByToken 获取会话令牌对应的用户ID
func (r *SessionRepository) UserIDByToken(ctx context.Context, token string) (int64, error) {
	val, err := r.client.Get(ctx, r.keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: malformed session value", ErrSessionNotFound)
	}
	return userID, nil
}
