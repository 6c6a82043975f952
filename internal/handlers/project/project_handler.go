package project

import (
	"net/http"

	"zabudowy-service/internal/domain/project"
	"zabudowy-service/internal/middleware"
	"zabudowy-service/internal/pkg/response"
	service "zabudowy-service/internal/service/project"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *service.Service
}

func NewProjectHandler(projectService *service.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to list projects")
		return
	}
	response.Success(c, http.StatusOK, "projects retrieved", projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.projectService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "project not found")
		return
	}
	response.Success(c, http.StatusOK, "project retrieved", p)
}

// CreateProject records the authenticated admin as the author.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	authorID, _ := middleware.GetUserID(c)

	var req project.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	p, err := h.projectService.CreateProject(c.Request.Context(), authorID, &req)
	if err != nil {
		response.FromError(c, err, "failed to create project")
		return
	}
	response.Success(c, http.StatusCreated, "project created", p)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req project.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	p, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err, "failed to update project")
		return
	}
	response.Success(c, http.StatusOK, "project updated", p)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err, "failed to delete project")
		return
	}
	response.Success(c, http.StatusOK, "project deleted", nil)
}
