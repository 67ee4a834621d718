package app

import (
	"exam_platform_backend/docs"
	"exam_platform_backend/internal/config"
	"exam_platform_backend/internal/middleware"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		authGroup.GET("/me", c.auth.Me)

		a.registerClassRoutes(authGroup, c)
		a.registerPaperRoutes(authGroup, c)
		a.registerAnalyticsRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerClassRoutes(rg *gin.RouterGroup, c *controllers) {
	classes := rg.Group("/classes")
	classes.Use(middleware.RoleMiddleware(model.Teacher))
	{
		classes.POST("", c.class.CreateClass)
		classes.GET("", c.class.ListClasses)
		classes.POST("/:id/students", c.class.EnrollStudent)
		classes.GET("/:id/students", c.class.ListStudents)
	}
}

func (a *App) registerPaperRoutes(rg *gin.RouterGroup, c *controllers) {
	teacherOnly := middleware.RoleMiddleware(model.Teacher)

	papers := rg.Group("/papers")
	{
		papers.GET("", c.paper.ListPapers)
		papers.GET("/:id", c.paper.GetPaper)
		papers.POST("", teacherOnly, c.paper.CreatePaper)
		papers.DELETE("/:id", teacherOnly, c.paper.DeletePaper)
		papers.PUT("/questions/:id", teacherOnly, c.paper.UpdateQuestion)

		papers.POST("/:id/submit", middleware.RoleMiddleware(model.Student), c.submission.Submit)
		papers.PUT("/submissions/answers/:id/score", teacherOnly, c.submission.OverrideScore)
		papers.GET("/submissions/:id", c.submission.GetSubmission)
		papers.GET("/students/:id/submissions", teacherOnly, c.submission.ListStudentSubmissions)
	}
}

func (a *App) registerAnalyticsRoutes(rg *gin.RouterGroup, c *controllers) {
	analytics := rg.Group("/analytics")
	{
		teacher := analytics.Group("")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.GET("/overview", c.analytics.GetOverview)
			teacher.GET("/weak-skills", c.analytics.GetWeakSkills)
			teacher.GET("/weak-areas", c.analytics.GetWeakAreas)
			teacher.GET("/student-performance", c.analytics.GetStudentPerformance)
		}

		analytics.GET("/student-report", middleware.RoleMiddleware(model.Student), c.analytics.GetStudentReport)
	}
}
