package utils

import (
	"strings"

	"github.com/samber/lo"
)

// RoleListSeparator board_group 等角色列表字段的分隔符
const RoleListSeparator = ","

// ParseRoleList 解析逗号分隔的角色ID列表
// 与查询中的 REPLACE(board_group, ' ', '') 一致，只去除空格；制表符等其他空白保留，不会匹配任何角色
func ParseRoleList(raw string) []string {
	parts := lo.Map(strings.Split(raw, RoleListSeparator), func(s string, _ int) string {
		return strings.ReplaceAll(s, " ", "")
	})
	return lo.Filter(parts, func(s string, _ int) bool {
		return s != ""
	})
}
