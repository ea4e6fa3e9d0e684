package database

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"noticeboard/config"
)

// MySQLDSN 根据配置构建DSN，时间列按 loc 解析
func MySQLDSN(cfg config.DatabaseConfig, loc *time.Location) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = loc
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// NewMySQLConnection 创建一个新的MySQL连接池
func NewMySQLConnection(cfg config.DatabaseConfig, loc *time.Location) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", MySQLDSN(cfg, loc))
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 配置连接池
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
