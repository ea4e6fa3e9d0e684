package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/sets"

	"noticeboard/internal/utils"
)

// Announcement 公告模型
// AccountID 为空表示平台（开发团队）发布的全局公告
type Announcement struct {
	ID         int64     `db:"id" json:"id"`
	AccountID  *int64    `db:"account_id" json:"account_id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	BoardGroup RoleSet   `db:"board_group" json:"board_group"`
	FixYn      Flag      `db:"fix_yn" json:"fix_yn"`
	UseYn      Flag      `db:"use_yn" json:"use_yn"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"-"`
}

// IsGlobal 是否为平台发布的全局公告
func (a *Announcement) IsGlobal() bool {
	return a.AccountID == nil
}

// VisibleTo 判断公告对调用者是否可见
// 全局公告、本组织公告对所有成员可见；上级组织公告仅对 board_group 中的角色可见
func (a *Announcement) VisibleTo(caller Caller) bool {
	if a.IsGlobal() {
		return true
	}
	if *a.AccountID == caller.AccountID {
		return true
	}
	return *a.AccountID == caller.TopAccountID && a.BoardGroup.Contains(caller.RoleID)
}

// RoleSet board_group 字段的集合形式
// 数据库中以逗号分隔字符串存储，JSON中输出为排序后的字符串数组
type RoleSet sets.Set[string]

// NewRoleSet 由角色ID列表创建集合，每项可以是逗号分隔的字符串
func NewRoleSet(roles ...string) RoleSet {
	return RoleSet(sets.New(utils.ParseRoleList(strings.Join(roles, utils.RoleListSeparator))...))
}

// Contains 角色是否在集合中（整项精确匹配）
func (s RoleSet) Contains(roleID int64) bool {
	return sets.Set[string](s).Has(strconv.FormatInt(roleID, 10))
}

// List 返回排序后的角色ID
func (s RoleSet) List() []string {
	return sets.List(sets.Set[string](s))
}

// Scan 实现 sql.Scanner
func (s *RoleSet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = NewRoleSet()
	case []byte:
		*s = NewRoleSet(string(v))
	case string:
		*s = NewRoleSet(v)
	default:
		return fmt.Errorf("cannot scan %T into RoleSet", src)
	}
	return nil
}

// Value 实现 driver.Valuer
func (s RoleSet) Value() (driver.Value, error) {
	return strings.Join(s.List(), utils.RoleListSeparator), nil
}

// MarshalJSON 输出为排序后的字符串数组
func (s RoleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON 从字符串数组读取
func (s *RoleSet) UnmarshalJSON(data []byte) error {
	var roles []string
	if err := json.Unmarshal(data, &roles); err != nil {
		return err
	}
	*s = NewRoleSet(roles...)
	return nil
}

// Flag 以 'Y'/'N' 存储的布尔标记（fix_yn、use_yn）
type Flag bool

const (
	// FlagYes 数据库中表示真的取值
	FlagYes = "Y"
	// FlagNo 数据库中表示假的取值
	FlagNo = "N"
)

// Scan 实现 sql.Scanner，兼容 'Y'/'N'、1/0 与布尔列
func (f *Flag) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case []byte:
		return f.parse(string(v))
	case string:
		return f.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Flag", src)
	}
	return nil
}

func (f *Flag) parse(s string) error {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case FlagYes, "1", "TRUE":
		*f = true
	case FlagNo, "0", "FALSE", "":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %q", s)
	}
	return nil
}

// Value 实现 driver.Valuer
func (f Flag) Value() (driver.Value, error) {
	if f {
		return FlagYes, nil
	}
	return FlagNo, nil
}
