package api

import (
	"net/http"

	"figmine-backend/internal/auth/delivery"
	authUsecase "figmine-backend/internal/auth/usecase"
	figmaDelivery "figmine-backend/internal/figma/delivery"
	figmaUsecasePkg "figmine-backend/internal/figma/usecase"
	projectDelivery "figmine-backend/internal/project/delivery"
	projectUsecasePkg "figmine-backend/internal/project/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, figmaUsecase figmaUsecasePkg.FigmaUsecase, projectUsecase projectUsecasePkg.ProjectUsecase) {
	authHandler := delivery.NewAuthHandler(authUsecase)
	figmaHandler := figmaDelivery.NewFigmaHandler(figmaUsecase)
	projectHandler := projectDelivery.NewProjectHandler(projectUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// Figma OAuth routes. The callback is hit by the provider redirect
		// and authenticates through the state parameter instead of a header.
		figmaAuth := api.Group("/figma")
		{
			figmaAuth.GET("/connect", figmaHandler.Connect)
			figmaAuth.GET("/callback", figmaHandler.Callback)
		}

		// Figma browse routes (protected)
		figmaAPI := api.Group("/v1/figma")
		figmaAPI.Use(delivery.AuthMiddleware(authUsecase))
		{
			figmaAPI.GET("/files/:fileKey", figmaHandler.GetFile)
			figmaAPI.GET("/teams/:teamId/projects", figmaHandler.GetTeamProjects)
			figmaAPI.GET("/projects/:projectId/files", figmaHandler.GetProjectFiles)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(delivery.AuthMiddleware(authUsecase))
		{
			projects.GET("", projectHandler.GetProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}
	}
}
