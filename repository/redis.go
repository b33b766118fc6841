// redis.go
package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	Rdb *redis.Client
	Ctx = context.Background()
)

func InitRedis(addr, password string, db int) error {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,     // Redis 地址（Docker 里用服务名或内网IP）
		Password: password, // 如果有密码，写在这里
		DB:       db,
	})

	if _, err := Rdb.Ping(Ctx).Result(); err != nil {
		return fmt.Errorf("Redis 连接失败: %w", err)
	}
	zap.L().Info("✅ Redis 连接成功", zap.String("addr", addr), zap.Int("db", db))
	return nil
}
