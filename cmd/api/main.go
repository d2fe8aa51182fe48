package main

import (
	"log"

	"github.com/campushire/jobboard-api/internal/auth"
	"github.com/campushire/jobboard-api/internal/config"
	"github.com/campushire/jobboard-api/internal/database"
	"github.com/campushire/jobboard-api/internal/handlers"
	"github.com/campushire/jobboard-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services
	authService := services.NewAuthService(db)
	skillService := services.NewSkillService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	categoryService := services.NewCategoryService(db)
	dashboardService := services.NewDashboardService(db)

	// Seed the admin account so the /admin routes are reachable on a fresh
	// database
	if cfg.AdminEmail != "" {
		if _, err := authService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal("Failed to seed admin account:", err)
		}
		log.Println("Admin account ready:", cfg.AdminEmail)
	}

	// 4. Background Expiry Watcher
	expiryService := services.NewExpiryService(jobService, cfg.ExpirySweepInterval)
	expiryService.StartWatcher()

	// 5. Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	skillHandler := handlers.NewSkillHandler(skillService)
	jobHandler := handlers.NewJobHandler(jobService, applicationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Student routes
		student := api.Group("")
		student.Use(auth.RequireUser(authService))
		{
			student.GET("/jobs", jobHandler.ListJobs)
			student.GET("/jobs/:id", jobHandler.GetJob)
			student.POST("/jobs/:id/apply", jobHandler.Apply)
			student.DELETE("/jobs/:id/apply", jobHandler.Withdraw)
			student.POST("/jobs/:id/save", jobHandler.SaveJob)
			student.DELETE("/jobs/:id/save", jobHandler.UnsaveJob)
			student.GET("/applications", jobHandler.ListApplications)

			student.GET("/skills", skillHandler.ListSkills)
			student.POST("/skills", skillHandler.AddSkill)
			student.PUT("/skills/:id", skillHandler.UpdateSkill)
			student.DELETE("/skills/:id", skillHandler.RemoveSkill)

			student.GET("/dashboard", dashboardHandler.Overview)
			student.GET("/dashboard/recommendations", dashboardHandler.Recommendations)
			student.GET("/dashboard/actions", dashboardHandler.QuickActions)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(auth.RequireUser(authService), auth.RequireAdmin())
		{
			admin.GET("/categories", categoryHandler.ListCategories)
			admin.POST("/categories", categoryHandler.CreateCategory)
			admin.PATCH("/categories/:id/active", categoryHandler.SetActive)
			admin.GET("/categories/:id/stats", categoryHandler.Stats)

			admin.POST("/jobs", jobHandler.CreateJob)
			admin.PATCH("/jobs/:id/status", jobHandler.UpdateJobStatus)
		}
	}

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
