package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openlance/marketplace-go/src/handlers"
	"github.com/openlance/marketplace-go/src/middleware"
	"github.com/openlance/marketplace-go/src/repositories"
	"github.com/openlance/marketplace-go/src/services"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, log *zap.Logger) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance, log)
	handlers_instance := handlers.New(services_instance)

	// public feed browsing
	r.GET("/jobs/feed", handlers_instance.Feed.GetFeed)
	r.GET("/jobs/:id", handlers_instance.Job.GetJob)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		jobs := auth.Group("/jobs")
		{
			jobs.POST("", handlers_instance.Job.CreateJob)
			jobs.PUT("/:id/workers", handlers_instance.Job.UpdateWorkers)
			jobs.GET("/:id/availability", handlers_instance.Job.GetAvailability)
			jobs.POST("/:id/applications", handlers_instance.Application.Apply)
		}
		applications := auth.Group("/applications")
		{
			applications.POST("/:id/accept", handlers_instance.Application.Accept)
			applications.POST("/:id/reject", handlers_instance.Application.Reject)
			applications.POST("/:id/complete", handlers_instance.Application.Complete)
		}
		admin := auth.Group("/admin")
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/algorithm-settings", handlers_instance.Settings.GetSettings)
			admin.PUT("/algorithm-settings", handlers_instance.Settings.UpdateSettings)
			admin.GET("/jobs/feed/preview", handlers_instance.Feed.PreviewFeed)
		}
	}
}
