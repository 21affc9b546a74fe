package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/auth"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/config"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/database"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/handlers"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/services"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/storage"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Resume Storage
	resumes, err := storage.NewResumeStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory:", err)
	}

	// 4. Initialize Core Services (Dependencies)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, resumes)

	// 5. Initialize Handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 6. Setup Router & Routes
	r := handlers.NewRouter(handlers.RouterDeps{
		Users:        userService,
		Tokens:       tokens,
		Auth:         authHandler,
		Jobs:         jobHandler,
		Applications: applicationHandler,
		UploadDir:    resumes.Dir(),
	})

	log.Printf("Server is running on port: %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
