package repository

import (
	"context"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"noticeboard/internal/model"
)

var announcementColumns = []string{
	"id",
	"account_id",
	"title",
	"content",
	"board_group",
	"fix_yn",
	"use_yn",
	"created_at",
	"updated_at",
}

// AnnouncementRepository 公告存储库（只读）
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository 创建公告存储库实例
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// FindTop 按条件获取最新的公告
func (r *AnnouncementRepository) FindTop(ctx context.Context, filter model.AnnouncementFilter) ([]model.Announcement, error) {
	query, args, err := topAnnouncementsQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	announcements := []model.Announcement{}
	if err := r.db.SelectContext(ctx, &announcements, query, args...); err != nil {
		return nil, err
	}
	return announcements, nil
}

// topAnnouncementsQuery 构建顶部公告查询
//
// 可见范围：
//  1. account_id 为空的全局公告（开发团队发布）
//  2. 调用者本组织发布的公告
//  3. 上级组织发布且 board_group 包含调用者角色的公告
//
// FIND_IN_SET 按整项匹配，board_group 中的空白先行去除。
func topAnnouncementsQuery(filter model.AnnouncementFilter) sq.SelectBuilder {
	roleID := strconv.FormatInt(filter.RoleID, 10)

	builder := sq.Select(announcementColumns...).
		From("announcements").
		Where(sq.Expr("created_at BETWEEN ? AND ?", filter.Start, filter.End)).
		Where(sq.Eq{"fix_yn": model.FlagYes}).
		Where(sq.Eq{"use_yn": model.FlagYes}).
		Where(sq.Or{
			sq.Eq{"account_id": nil},
			sq.Eq{"account_id": filter.AccountID},
			sq.And{
				sq.Eq{"account_id": filter.TopAccountID},
				sq.Expr("FIND_IN_SET(?, REPLACE(board_group, ' ', '')) > 0", roleID),
			},
		}).
		OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	return builder
}
