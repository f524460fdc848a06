package app

import (
	"eduquiz_backend/docs"
	"eduquiz_backend/internal/config"
	"eduquiz_backend/internal/middleware"
	"eduquiz_backend/internal/model"
	"eduquiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.Use(middleware.RequestID())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 学生端
		a.registerStudentRoutes(authGroup, c)

		// 教师端
		a.registerTeacherRoutes(authGroup, c)

		// 管理员端
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/subjects", c.attempt.ListMySubjects)

	// 实验
	rg.GET("/experiments", c.experiment.ListForStudent)
	rg.GET("/experiments/:id", c.experiment.GetForStudent)

	// 测验作答
	rg.GET("/quizzes", c.attempt.ListQuizzes)
	rg.GET("/quizzes/:id", c.attempt.GetQuiz)
	rg.POST("/quizzes/:id/start", c.attempt.StartAttempt)
	rg.POST("/quizzes/:id/submit", c.attempt.SubmitAttempt)
	rg.GET("/attempts", c.attempt.ListMyResults)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		// 实验管理
		teacher.POST("/experiments", c.experiment.CreateExperiment)
		teacher.GET("/experiments", c.experiment.ListExperiments)
		teacher.PUT("/experiments/:id", c.experiment.UpdateExperiment)
		teacher.DELETE("/experiments/:id", c.experiment.DeleteExperiment)

		// 测验与题目管理
		teacher.POST("/quizzes", c.quiz.CreateQuiz)
		teacher.GET("/quizzes", c.quiz.ListQuizzes)
		teacher.GET("/quizzes/:id", c.quiz.GetQuiz)
		teacher.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
		teacher.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)
		teacher.PUT("/quizzes/:id/questions", c.quiz.SetQuestions)
		teacher.POST("/quizzes/:id/questions", c.quiz.AddQuestion)
		teacher.PUT("/questions/:id", c.quiz.UpdateQuestion)
		teacher.DELETE("/questions/:id", c.quiz.DeleteQuestion)

		// 成绩与统计
		teacher.GET("/quizzes/:id/attempts", c.quiz.ListAttempts)
		teacher.GET("/questions/:id/analytics", c.quiz.AnalyzeQuestion)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/users", c.admin.CreateUser)
		admin.GET("/users", c.admin.ListUsers)
		admin.PUT("/users/:id", c.admin.UpdateUser)
		admin.DELETE("/users/:id", c.admin.DeleteUser)

		admin.POST("/classes", c.admin.CreateClass)
		admin.GET("/classes", c.admin.ListClasses)
		admin.PUT("/classes/:id", c.admin.UpdateClass)
		admin.DELETE("/classes/:id", c.admin.DeleteClass)
		admin.GET("/classes/:id/students", c.admin.ListClassStudents)
		admin.GET("/classes/:id/subjects", c.admin.ListClassSubjects)
		admin.POST("/classes/:id/subjects", c.admin.AssignSubject)
		admin.DELETE("/classes/:id/subjects/:subjectId", c.admin.RemoveSubject)

		admin.POST("/subjects", c.admin.CreateSubject)
		admin.GET("/subjects", c.admin.ListSubjects)
		admin.PUT("/subjects/:id", c.admin.UpdateSubject)
		admin.DELETE("/subjects/:id", c.admin.DeleteSubject)
	}
}
