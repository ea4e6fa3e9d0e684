package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal 按方法、路由与状态码统计的请求数
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "noticeboard_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	// AnnouncementQueryDuration 顶部公告查询耗时
	AnnouncementQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "noticeboard_announcement_query_duration_seconds",
		Help:    "Time to load top announcements from the store",
		Buckets: prometheus.DefBuckets,
	})

	// AnnouncementQueryErrors 按错误类型统计的查询失败数
	AnnouncementQueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "noticeboard_announcement_query_errors_total",
		Help: "Top announcement queries that failed, by error kind",
	}, []string{"kind"})

	// AnnouncementsReturned 每次查询返回的公告条数
	AnnouncementsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "noticeboard_announcements_returned",
		Help:    "Number of announcements returned per top announcement query",
		Buckets: []float64{0, 1, 2, 3, 4, 5},
	})

	// AnnouncementsDropped 未通过进程内可见性复核而被丢弃的行数
	AnnouncementsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "noticeboard_announcements_dropped_total",
		Help: "Rows returned by the store that failed the in-process visibility check",
	})
)

// ObserveHTTPRequest 记录一次HTTP请求，未匹配路由记为 unmatched
func ObserveHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// ObserveAnnouncementQuery 记录一次成功查询的耗时与返回条数
func ObserveAnnouncementQuery(duration time.Duration, returned int) {
	AnnouncementQueryDuration.Observe(duration.Seconds())
	AnnouncementsReturned.Observe(float64(returned))
}

// IncAnnouncementQueryError 记录一次查询失败
func IncAnnouncementQueryError(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	AnnouncementQueryErrors.WithLabelValues(kind).Inc()
}

// AddAnnouncementsDropped 累加被丢弃的行数
func AddAnnouncementsDropped(n int) {
	if n <= 0 {
		return
	}
	AnnouncementsDropped.Add(float64(n))
}
