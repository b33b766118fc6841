package main

import (
	"go-l5r/config"
	"go-l5r/engine"
	"go-l5r/logger"
	"go-l5r/repository"
	"go-l5r/router"
	"go-l5r/utils"
	"go-l5r/ws"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("读取配置失败: %v", err)
	}
	l, err := logger.Init(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer l.Sync()

	if err := repository.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		l.Fatal("Redis 初始化失败", zap.Error(err))
	}

	var journal ws.Journal = ws.NopJournal{}
	if cfg.MySQLDSN != "" {
		db, err := repository.InitMySQL(cfg.MySQLDSN)
		if err != nil {
			l.Fatal("MySQL 初始化失败", zap.Error(err))
		}
		defer db.Close()
		journal = ws.NewMySQLJournal(db)
	}

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = uuid.NewString()
		l.Warn("未配置 JWT_SECRET，使用随机密钥，重启后旧 token 失效")
	}
	utils.InitJWT(jwtSecret, cfg.TokenTTL)

	registry := prometheus.NewRegistry()
	metrics := engine.NewMetrics(registry)
	gameEngine := engine.New(l.Named("engine"), metrics)
	engine.TrackPersonalHonorLoss(gameEngine, metrics)
	ws.Setup(ws.Options{
		Engine:     gameEngine,
		Journal:    journal,
		GameLogDir: cfg.GameLogDir,
		HandSize:   cfg.HandSize,
	})
	go ws.ScheduleDailyRoomReset()

	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true // 未配置时允许所有来源
	}
	r.Use(cors.New(corsCfg))

	router.InitRouter(r, cfg.AdminToken, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	l.Info("服务启动", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		l.Fatal("服务退出", zap.Error(err))
	}
}
