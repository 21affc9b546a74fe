package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/auth"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/middleware"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/models"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/services"
)

// RouterDeps is everything NewRouter needs to wire the route table.
type RouterDeps struct {
	Users        *services.UserService
	Tokens       *auth.TokenIssuer
	Auth         *AuthHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	UploadDir    string
}

// NewRouter builds the gin engine with CORS, static resume serving and the
// full route table.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// Serve stored resumes back as static files
	r.Static("/uploads", deps.UploadDir)

	authed := middleware.RequireAuth(deps.Tokens, deps.Users)
	employerOnly := middleware.RequireRole(models.RoleEmployer)

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.POST("/auth/register", deps.Auth.Register)
		api.POST("/auth/login", deps.Auth.Login)

		api.POST("/jobs", authed, employerOnly, deps.Jobs.CreateJob)
		api.GET("/jobs", deps.Jobs.GetAllJobs)
		api.GET("/jobs/my-jobs", authed, employerOnly, deps.Jobs.GetMyJobs)
		api.GET("/jobs/:id", deps.Jobs.GetJobByID)

		api.POST("/applications/job/:id/apply", authed, deps.Applications.Apply)
		api.GET("/applications/my-applications", authed, deps.Applications.MyApplications)
		api.GET("/applications/job/:id/applications", authed, employerOnly, deps.Applications.JobApplications)
	}

	return r
}
