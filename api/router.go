package api

import (
	"github.com/SlpAus/speech-therapy-backend/internal/aiplan"
	"github.com/SlpAus/speech-therapy-backend/internal/analytics"
	"github.com/SlpAus/speech-therapy-backend/internal/dashboard"
	"github.com/SlpAus/speech-therapy-backend/internal/exercise"
	"github.com/SlpAus/speech-therapy-backend/internal/fluency"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 认证相关的路由
		api.POST("/auth/login", user.Login)

		// 用户相关的路由组
		userRoutes := api.Group("/users")
		{
			userRoutes.GET("/:userId", user.RequireUserMiddleware(), user.GetProfile)
			userRoutes.GET("/:userId/settings", user.RequireUserMiddleware(), user.GetSettings)
			userRoutes.PUT("/:userId/settings", user.RequireUserMiddleware(), user.UpdateSettings)
			userRoutes.PUT("/:userId/goals", user.RequireUserMiddleware(), user.UpdateGoalsHandler)
		}

		// 练习目录相关的路由组
		exerciseRoutes := api.Group("/exercises")
		{
			exerciseRoutes.GET("/recommendations/:userId", user.RequireUserMiddleware(), exercise.GetRecommendations)
			exerciseRoutes.GET("/:userId", user.RequireUserMiddleware(), exercise.GetAllExercises)
			exerciseRoutes.GET("/:userId/progress", user.RequireUserMiddleware(), exercise.GetProgress)
			exerciseRoutes.GET("/:userId/:category/:type", user.RequireUserMiddleware(), exercise.GetExercisesByFilter)
		}
		// 完成操作的练习ID和用户ID不共用通配符，路径用单数形式区分
		api.POST("/exercise/:exerciseId/complete", exercise.CompleteExercise)

		// 分析报告
		api.GET("/analytics/:userId", user.RequireUserMiddleware(), analytics.GetAnalytics)

		// 首页相关的路由组
		dashboardRoutes := api.Group("/dashboard")
		{
			dashboardRoutes.GET("/health", dashboard.HealthCheck)
			dashboardRoutes.GET("/:userId", user.RequireUserMiddleware(), dashboard.GetDashboard)
			dashboardRoutes.GET("/:userId/stats", user.RequireUserMiddleware(), dashboard.GetStats)
		}

		// 反馈列表
		api.GET("/feedback/:userId", user.RequireUserMiddleware(), dashboard.GetFeedback)

		// 语音分析相关的路由组
		speechRoutes := api.Group("/speech")
		{
			speechRoutes.POST("/analyze", fluency.AnalyzeAudio)
			speechRoutes.POST("/quick-analyze", fluency.QuickAnalyze)
		}

		// 流畅度趋势相关的路由组
		fluencyRoutes := api.Group("/fluency")
		{
			fluencyRoutes.GET("/:userId", user.RequireUserMiddleware(), fluency.GetFluencyAnalysis)
			fluencyRoutes.GET("/:userId/range", user.RequireUserMiddleware(), fluency.GetFluencyRange)
		}

		// AI练习相关的路由组
		aiRoutes := api.Group("/ai")
		{
			aiRoutes.POST("/generate-exercise/:userId", user.RequireUserMiddleware(), aiplan.GenerateExerciseHandler)
			aiRoutes.POST("/generate-weekly-plan/:userId", user.RequireUserMiddleware(), aiplan.GenerateWeeklyPlanHandler)
			aiRoutes.GET("/exercises/:userId", user.RequireUserMiddleware(), aiplan.GetUserExercises)
			aiRoutes.GET("/exercises/:userId/active", user.RequireUserMiddleware(), aiplan.GetActiveExercises)
			// 同上，完成操作的路径用单数形式区分
			aiRoutes.POST("/exercise/:exerciseId/complete", aiplan.CompleteExerciseHandler)
		}
	}
}
