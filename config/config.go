package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8000"`
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	MySQLDSN       string        `env:"MYSQL_DSN"` // 为空时不记录动作流水
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	GameLogDir     string        `env:"GAME_LOG_DIR" envDefault:"./game_logs"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:","` // 为空时允许所有来源
	AdminToken     string        `env:"ADMIN_TOKEN"`
	HandSize       int           `env:"HAND_SIZE" envDefault:"3"`
	JWTSecret      string        `env:"JWT_SECRET"` // 为空时启动时随机生成
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}

// Load 从环境变量读取配置
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HandSize <= 0 {
		return nil, fmt.Errorf("HAND_SIZE 必须大于 0: %d", cfg.HandSize)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL 必须大于 0: %s", cfg.TokenTTL)
	}
	return &cfg, nil
}
