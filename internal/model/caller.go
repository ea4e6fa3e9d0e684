package model

import "time"

// Caller 已认证的调用者身份
// TopAccountID 为所属上级组织；账号本身即为顶级组织时与 AccountID 相同
type Caller struct {
	UserID       int64 `db:"user_id" json:"user_id"`
	AccountID    int64 `db:"account_id" json:"account_id"`
	TopAccountID int64 `db:"top_account_id" json:"top_account_id"`
	RoleID       int64 `db:"role_id" json:"role_id"`
	Status       int   `db:"status" json:"-"`
}

// UserStatusActive 正常状态的用户
const UserStatusActive = 1

// IsActive 用户是否处于正常状态
func (c *Caller) IsActive() bool {
	return c.Status == UserStatusActive
}

// AnnouncementFilter 顶部公告查询条件
// Start、End 为闭区间，作用于 created_at
type AnnouncementFilter struct {
	Start        time.Time
	End          time.Time
	AccountID    int64
	TopAccountID int64
	RoleID       int64
	Limit        int
}

// Caller 返回条件对应的调用者身份
func (f AnnouncementFilter) Caller() Caller {
	return Caller{AccountID: f.AccountID, TopAccountID: f.TopAccountID, RoleID: f.RoleID}
}

// Matches 在进程内判断公告是否满足条件，与存储层的查询语义一致
func (f AnnouncementFilter) Matches(a Announcement) bool {
	if a.CreatedAt.Before(f.Start) || a.CreatedAt.After(f.End) {
		return false
	}
	if !a.FixYn || !a.UseYn {
		return false
	}
	return a.VisibleTo(f.Caller())
}
