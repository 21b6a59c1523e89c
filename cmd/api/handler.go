package api

import (
	authUsecase "figmine-backend/internal/auth/usecase"
	figmaUsecasePkg "figmine-backend/internal/figma/usecase"
	projectUsecasePkg "figmine-backend/internal/project/usecase"
	"figmine-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	figmaUsecase   figmaUsecasePkg.FigmaUsecase
	projectUsecase projectUsecasePkg.ProjectUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, figmaUc figmaUsecasePkg.FigmaUsecase, projectUc projectUsecasePkg.ProjectUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		figmaUsecase:   figmaUc,
		projectUsecase: projectUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.figmaUsecase, h.projectUsecase)

	return r.Run(addr)
}
