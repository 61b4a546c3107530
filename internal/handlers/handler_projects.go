package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
	"github.com/SscSPs/scan_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:projectID", h.getProject)
	}
}

// listProjects godoc
// @Summary List projects
// @Description Lists projects ordered by name. Only active projects unless activeOnly=false.
// @Tags projects
// @Produce json
// @Param activeOnly query bool false "Only active projects" default(true)
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListProjects", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), actor, params.ActiveOnly)
	if err != nil {
		handleServiceError(c, logger, "list_projects", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	projectID := c.Param("projectID")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), actor, projectID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("project_id", projectID)), "get_project", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}
