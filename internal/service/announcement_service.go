package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"noticeboard/internal/metrics"
	"noticeboard/internal/model"
	"noticeboard/pkg/logger"
)

// TopAnnouncementLimit 快捷菜单最多展示的公告数
const TopAnnouncementLimit = 5

// AnnouncementStore 公告存储
type AnnouncementStore interface {
	FindTop(ctx context.Context, filter model.AnnouncementFilter) ([]model.Announcement, error)
}

// AnnouncementService 公告查询服务
type AnnouncementService struct {
	store  AnnouncementStore
	logger *logger.Logger
	now    func() time.Time
}

// NewAnnouncementService 创建公告查询服务实例，时间窗口按 loc 计算
func NewAnnouncementService(store AnnouncementStore, logger *logger.Logger, loc *time.Location) *AnnouncementService {
	if loc == nil {
		loc = time.Local
	}
	return &AnnouncementService{
		store:  store,
		logger: logger,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// TopAnnouncementWindow 返回 [昨天 00:00:00, 今天 23:59:59.999999999]
func TopAnnouncementWindow(now time.Time) (start, end time.Time) {
	loc := now.Location()

	y, m, d := now.AddDate(0, 0, -1).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, loc)

	y, m, d = now.Date()
	end = time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	return start, end
}

// ListTopAnnouncements 获取调用者可见的最新置顶公告，按创建时间倒序，最多5条
// now 为零值时使用当前时间；没有匹配结果时返回空切片
func (s *AnnouncementService) ListTopAnnouncements(ctx context.Context, caller *model.Caller, now time.Time) ([]model.Announcement, error) {
	if caller == nil {
		metrics.IncAnnouncementQueryError("unauthenticated")
		return nil, ErrUnauthenticated
	}
	if now.IsZero() {
		now = s.now()
	}

	start, end := TopAnnouncementWindow(now)
	filter := model.AnnouncementFilter{
		Start:        start,
		End:          end,
		AccountID:    caller.AccountID,
		TopAccountID: caller.TopAccountID,
		RoleID:       caller.RoleID,
		Limit:        TopAnnouncementLimit,
	}

	began := time.Now()
	rows, err := s.store.FindTop(ctx, filter)
	if err != nil {
		metrics.IncAnnouncementQueryError("store_unavailable")
		s.logger.Error("获取顶部公告失败", "account_id", caller.AccountID, "role_id", caller.RoleID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	// SQL 已按同一条件过滤，这里逐行按整项匹配复核一次，不一致的行丢弃
	visible := lo.Filter(rows, func(a model.Announcement, _ int) bool {
		return filter.Matches(a)
	})
	if dropped := len(rows) - len(visible); dropped > 0 {
		metrics.AddAnnouncementsDropped(dropped)
		s.logger.Warn("存储返回了不可见的公告",
			"dropped", dropped,
			"account_id", caller.AccountID,
			"top_account_id", caller.TopAccountID,
			"role_id", caller.RoleID,
		)
	}

	// MySQL 已排序并限制条数；重新排序截断使结果不依赖具体的存储实现
	slices.SortStableFunc(visible, func(a, b model.Announcement) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if len(visible) > TopAnnouncementLimit {
		visible = visible[:TopAnnouncementLimit]
	}

	metrics.ObserveAnnouncementQuery(time.Since(began), len(visible))
	s.logger.Debug("顶部公告查询完成", "account_id", caller.AccountID, "count", len(visible))

	return visible, nil
}
