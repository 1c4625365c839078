package app

import (
	"time"

	"github.com/VeyselCerav/kelime/docs"
	"github.com/VeyselCerav/kelime/internal/config"
	"github.com/VeyselCerav/kelime/internal/middleware"
	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/internal/util"
	"github.com/VeyselCerav/kelime/pkg/monitoring"
	"github.com/VeyselCerav/kelime/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
		api.POST("/logout", c.auth.Logout)
		api.GET("/words", c.word.List)

		auth := api.Group("/auth")
		{
			auth.GET("/verify", c.auth.VerifyEmail)
			auth.POST("/verify", c.auth.VerifyEmail)

			// 重置邮件单独限流
			resetLimiter := security.RateLimiter(
				util.ResetPasswordMaxAttempts,
				util.ResetPasswordWindowMin*time.Minute,
				"Too many reset attempts, please try again later",
			)
			auth.POST("/reset-password", resetLimiter, c.auth.RequestPasswordReset)
			auth.POST("/reset-password/confirm", c.auth.ConfirmPasswordReset)
		}
	}

	// 登录后路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		authGroup.GET("/profile", c.auth.Profile)

		authGroup.GET("/quiz", c.quiz.Questions)
		authGroup.POST("/quiz/submit", c.quiz.Submit)

		authGroup.POST("/learned-words", c.progress.MarkLearned)
		authGroup.GET("/unlearned-words", c.progress.UnlearnedList)
		authGroup.POST("/unlearned-words", c.progress.MarkUnlearned)
		authGroup.DELETE("/unlearned-words", c.progress.RemoveUnlearned)

		authGroup.GET("/daily-goal", c.dailyGoal.Today)
		authGroup.PUT("/daily-goal", c.dailyGoal.Update)

		authGroup.GET("/progress", c.progress.Overview)
	}

	// 管理员路由
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/words", c.word.Create)
		adminGroup.DELETE("/words/:id", c.word.Delete)
		adminGroup.POST("/words/import", c.word.Import)
		adminGroup.GET("/statistics", c.admin.Statistics)
		adminGroup.GET("/users", c.admin.ListUsers)
		adminGroup.DELETE("/users/:id", c.admin.DeleteUser)
	}
}
