package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"noticeboard/internal/model"
)

// UserRepository 用户身份仓库接口
type UserRepository interface {
	GetCallerByUserID(ctx context.Context, userID int64) (*model.Caller, error)
	GetUserIDByToken(ctx context.Context, token string) (int64, error)
}

// userRepository 用户身份仓库实现
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository 创建用户身份仓库实例
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// GetCallerByUserID 获取用户的组织与角色信息
// 账号没有上级组织时，上级组织即为账号本身
func (r *userRepository) GetCallerByUserID(ctx context.Context, userID int64) (*model.Caller, error) {
	caller := &model.Caller{}
	query := `
		SELECT u.id AS user_id,
		       u.account_id,
		       COALESCE(a.top_account_id, a.id) AS top_account_id,
		       u.role_id,
		       u.status
		  FROM users u
		  JOIN accounts a ON a.id = u.account_id
		 WHERE u.id = ?`
	if err := r.db.GetContext(ctx, caller, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return caller, nil
}

// GetUserIDByToken 根据长期API令牌获取用户ID
func (r *userRepository) GetUserIDByToken(ctx context.Context, token string) (int64, error) {
	var userID int64
	if err := r.db.GetContext(ctx, &userID, `SELECT id FROM users WHERE token = ?`, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return userID, nil
}
