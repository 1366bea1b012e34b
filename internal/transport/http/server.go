package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "taskdo/internal/app"
	"taskdo/internal/bootstrap"
	"taskdo/internal/cache"
	"taskdo/internal/platform/rabbitmq"
	"taskdo/internal/repository"
	"taskdo/internal/transport/http/handler"
	"taskdo/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	priorityRepo := repository.NewPriorityRepository(app.MySQL)
	taskRepo := repository.NewTaskRepository(app.MySQL)

	priorityCache := cache.NewPriorityCache(
		app.Redis,
		time.Duration(app.Config.Redis.PriorityListTTLSeconds)*time.Second,
	)
	activityPublisher := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityPersistQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	priorityService := appsvc.NewPriorityService(priorityRepo, priorityCache)
	taskService := appsvc.NewTaskService(taskRepo, priorityService, activityPublisher)
	userService := appsvc.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	priorityHandler := handler.NewPriorityHandler(priorityService)
	taskHandler := handler.NewTaskHandler(taskService)
	userHandler := handler.NewUserHandler(userService)

	authJWT := middleware.AuthJWT(app.Config.Auth.JWTSecret)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authJWT, authHandler.Me)

	priorityGroup := v1.Group("/priorities")
	priorityGroup.POST("", priorityHandler.Create)
	priorityGroup.GET("", priorityHandler.List)
	priorityGroup.GET("/:id", priorityHandler.Get)
	priorityGroup.PATCH("/:id", priorityHandler.Update)
	priorityGroup.DELETE("/:id", priorityHandler.Delete)

	taskGroup := v1.Group("/tasks")
	taskGroup.Use(authJWT)
	taskGroup.POST("", taskHandler.Create)
	taskGroup.GET("", taskHandler.List)
	taskGroup.GET("/priorities", taskHandler.ListPriorities)
	taskGroup.GET("/:id", taskHandler.Get)
	taskGroup.PATCH("/:id", taskHandler.Update)
	taskGroup.DELETE("/:id", taskHandler.Delete)

	userGroup := v1.Group("/users")
	userGroup.Use(authJWT)
	userGroup.GET("", userHandler.List)
	userGroup.GET("/:id", userHandler.Get)
	userGroup.PUT("/:id", userHandler.Update)
	userGroup.DELETE("/:id", userHandler.Delete)

	return router
}
