package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/handlers"
	"github.com/taskhive/taskhive/internal/middleware"
	"github.com/taskhive/taskhive/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Session gate for everything outside the public allowlist.
	r.Use(middleware.AuthMiddleware())

	r.GET("/status", handlers.Status)
	r.GET("/api-docs", handlers.APIDocs)

	users := r.Group("/users")
	{
		users.POST("/signup", handlers.SignupUser)
		users.POST("/login", handlers.LoginUser)
		users.POST("/logout", handlers.LogoutUser)
		users.GET("", handlers.ListUsers)
		users.GET("/me", handlers.Me)
		users.GET("/email/:email", handlers.GetUserByEmail)
		users.GET("/:userId/projects", handlers.GetUserProjects)
	}

	projects := r.Group("/projects")
	{
		projects.GET("", handlers.ListProjects)
		projects.POST("", handlers.CreateProject)
		projects.GET("/:id", handlers.GetProject)
		projects.DELETE("/:id", handlers.DeleteProject)
		projects.PUT("/:id/users", handlers.UpdateProjectUsers)

		projects.POST("/:id/tasks", handlers.CreateTask)
		projects.GET("/:id/tasks", handlers.ListProjectTasks)

		projects.PATCH("/tasks/:taskId/status", handlers.UpdateTaskStatus)
		projects.PUT("/tasks/:taskId/status", handlers.UpdateTaskStatus)
		projects.PUT("/tasks/:taskId/users", handlers.UpdateTaskUsers)
		projects.DELETE("/tasks/:taskId", handlers.DeleteTask)
	}

	return r
}
