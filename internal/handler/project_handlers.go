package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"continuum-server/internal/models"
)

// parseIDParam читает числовой path-параметр id.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.projects.Create(c.Request.Context(), project); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if err := h.projects.Update(c.Request.Context(), project); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
