package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config 应用程序配置
type Config struct {
	APIPort       int    `envconfig:"API_PORT" default:"8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	DefaultLocale string `envconfig:"DEFAULT_LOCALE" default:"en"`
	Timezone      string `envconfig:"TIMEZONE" default:"Local"`

	LogFile  LogFileConfig  `ignored:"true"`
	Database DatabaseConfig `ignored:"true"`
	Redis    RedisConfig    `ignored:"true"`
	Session  SessionConfig  `ignored:"true"`
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled    bool   `envconfig:"LOG_FILE_ENABLED" default:"false"`
	Path       string `envconfig:"LOG_FILE_PATH" default:"logs/noticeboard.log"`
	MaxSize    int    `envconfig:"LOG_FILE_MAX_SIZE" default:"100"` // MB
	MaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"7"`
	MaxAge     int    `envconfig:"LOG_FILE_MAX_AGE" default:"30"` // 天
	Compress   bool   `envconfig:"LOG_FILE_COMPRESS" default:"false"`
}

// DatabaseConfig MySQL数据库配置
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	Port     int    `envconfig:"DB_PORT" default:"3306"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"127.0.0.1"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// SessionConfig 会话令牌配置
type SessionConfig struct {
	KeyPrefix string `envconfig:"SESSION_KEY_PREFIX" default:"auth:token:"`
}

// Load 从.env文件和环境变量加载配置
func Load() (*Config, error) {
	// .env 文件可选，缺失时仅使用进程环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var cfg Config
	// 子配置逐个解析，变量名均为完整名称（如 DB_HOST）
	sections := []interface{}{&cfg, &cfg.LogFile, &cfg.Database, &cfg.Redis, &cfg.Session}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to parse configuration: %w", err)
		}
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location 返回配置的时区，公告时间窗口按该时区计算
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
