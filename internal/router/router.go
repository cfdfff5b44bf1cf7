package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/internal/handlers"
	"github.com/softdesk-dev/softdesk/internal/middleware"
	"github.com/softdesk-dev/softdesk/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	r.POST("/signup", handlers.Signup)
	r.POST("/login", handlers.Login)
	r.POST("/logout", handlers.Logout)

	projects := r.Group("/projects", middleware.AuthMiddleware())
	{
		projects.GET("", handlers.ListProjects)
		projects.POST("", handlers.CreateProject)
		projects.GET("/:project_id", handlers.RetrieveProject)
		projects.PUT("/:project_id", handlers.UpdateProject)
		projects.DELETE("/:project_id", handlers.DeleteProject)

		// Contributor endpoints
		projects.GET("/:project_id/users", handlers.ListContributors)
		projects.POST("/:project_id/users", handlers.AddContributor)
		projects.DELETE("/:project_id/users/:user_id", handlers.RemoveContributor)

		// Issue endpoints
		projects.GET("/:project_id/issues", handlers.ListIssues)
		projects.POST("/:project_id/issues", handlers.CreateIssue)
		projects.GET("/:project_id/issues/:issue_id", handlers.RetrieveIssue)
		projects.PUT("/:project_id/issues/:issue_id", handlers.UpdateIssue)
		projects.DELETE("/:project_id/issues/:issue_id", handlers.DeleteIssue)

		// Comment endpoints
		projects.GET("/:project_id/issues/:issue_id/comments", handlers.ListComments)
		projects.POST("/:project_id/issues/:issue_id/comments", handlers.CreateComment)
		projects.GET("/:project_id/issues/:issue_id/comments/:comment_id", handlers.RetrieveComment)
		projects.PUT("/:project_id/issues/:issue_id/comments/:comment_id", handlers.UpdateComment)
		projects.DELETE("/:project_id/issues/:issue_id/comments/:comment_id", handlers.DeleteComment)
	}

	return r
}
