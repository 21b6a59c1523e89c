package main

import (
	"log"
	"net/http"
	"os"

	api "figmine-backend/cmd/api"
	authdomain "figmine-backend/internal/auth/domain"
	authRepo "figmine-backend/internal/auth/repository"
	authUsecase "figmine-backend/internal/auth/usecase"
	figmadomain "figmine-backend/internal/figma/domain"
	figmaRepo "figmine-backend/internal/figma/repository"
	figmaUsecase "figmine-backend/internal/figma/usecase"
	projectdomain "figmine-backend/internal/project/domain"
	projectRepo "figmine-backend/internal/project/repository"
	projectUsecase "figmine-backend/internal/project/usecase"
	"figmine-backend/pkg/config"
	"figmine-backend/pkg/database"
	"figmine-backend/pkg/figma"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &figmadomain.OAuthToken{}, &projectdomain.Project{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	tokenRepository := figmaRepo.NewTokenRepository(db)
	projectRepository := projectRepo.NewProjectRepository(db)

	// One shared HTTP client for all Figma calls
	figmaService := figma.NewService(cfg, http.DefaultClient)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	figmaUsecaseInstance := figmaUsecase.NewFigmaUsecase(tokenRepository, figmaService, figmaService, authUsecaseInstance, userRepository)
	projectUsecaseInstance := projectUsecase.NewProjectUsecase(projectRepository, figmaUsecaseInstance, figmaService)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, figmaUsecaseInstance, projectUsecaseInstance, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := handler.Start(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
