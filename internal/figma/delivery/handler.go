package delivery

import (
	"net/http"
	"strings"

	"figmine-backend/internal/figma/usecase"
	"figmine-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// FigmaHandler handles Figma OAuth and browse HTTP requests
type FigmaHandler struct {
	figmaUsecase usecase.FigmaUsecase
}

// NewFigmaHandler creates a new FigmaHandler
func NewFigmaHandler(figmaUsecase usecase.FigmaUsecase) *FigmaHandler {
	return &FigmaHandler{
		figmaUsecase: figmaUsecase,
	}
}

// Connect returns the Figma OAuth URL for the caller
// GET /api/figma/connect
func (h *FigmaHandler) Connect(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		respondError(c, apperr.Unauthorized("Missing Authorization header"))
		return
	}

	identityToken := strings.TrimPrefix(authHeader, "Bearer ")

	resp, err := h.figmaUsecase.BeginAuthorization(identityToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Callback completes the OAuth flow after the provider redirect
// GET /api/figma/callback?code=...&state=...
func (h *FigmaHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code query parameter required"})
		return
	}
	state := c.Query("state")

	resp, err := h.figmaUsecase.CompleteAuthorization(c.Request.Context(), code, state)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFile fetches one file's details through the user's linked token
// GET /api/v1/figma/files/:fileKey
func (h *FigmaHandler) GetFile(c *gin.Context) {
	userID := c.GetString("userID")
	fileKey := c.Param("fileKey")

	file, err := h.figmaUsecase.GetFile(c.Request.Context(), userID, fileKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

// GetTeamProjects lists the projects of a Figma team
// GET /api/v1/figma/teams/:teamId/projects
func (h *FigmaHandler) GetTeamProjects(c *gin.Context) {
	userID := c.GetString("userID")
	teamID := c.Param("teamId")

	projects, err := h.figmaUsecase.GetTeamProjects(c.Request.Context(), userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProjectFiles lists the files of a Figma project
// GET /api/v1/figma/projects/:projectId/files
func (h *FigmaHandler) GetProjectFiles(c *gin.Context) {
	userID := c.GetString("userID")
	projectID := c.Param("projectId")

	files, err := h.figmaUsecase.GetProjectFiles(c.Request.Context(), userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, files)
}

func respondError(c *gin.Context, err error) {
	e := apperr.Ensure(err, "unexpected error")
	c.JSON(e.HTTPStatus(), e)
}
