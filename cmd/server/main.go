package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/speech-therapy-backend/api"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/config"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/health"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/shutdown"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/startup"
	"github.com/SlpAus/speech-therapy-backend/internal/practice"
	"github.com/SlpAus/speech-therapy-backend/pkg/lifecycle"
	"github.com/SlpAus/speech-therapy-backend/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	token.GenerateSecretKey()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置文件: %v", err))
	}

	database.InitDB(cfg.Database.Sqlite)
	database.InitRedis(cfg.Database.Redis)

	// 1. 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 2. 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 3. 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 4. 启动后台服务，生命周期交由停机协调器管理
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	healthHandle, err := gracefulMgr.Register("redis-health-checker")
	if err != nil {
		panic(fmt.Sprintf("无法注册健康检查器: %v", err))
	}
	go health.StartRedisHealthCheck(healthHandle)

	rollupHandle, err := gracefulMgr.Register("daily-rollup-scheduler")
	if err != nil {
		panic(fmt.Sprintf("无法注册每日结算任务: %v", err))
	}
	go practice.StartRollupScheduler(rollupHandle, cfg.Practice.RollupHour)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
