package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Theo3883/Hour-Tracking-Application/internal/middleware"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/service"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/util"
)

// DirectoryHandler serves the department and project catalog plus
// coordinator assignment.
type DirectoryHandler struct {
	directory   *service.DirectoryService
	coordinator *service.CoordinatorService
}

func NewDirectoryHandler(directory *service.DirectoryService, coordinator *service.CoordinatorService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, coordinator: coordinator}
}

// ListDepartments returns all departments
// @Router /departments [get]
func (h *DirectoryHandler) ListDepartments(c *gin.Context) {
	departments, err := h.directory.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Departments retrieved", departments))
}

// CreateDepartment creates a department
// @Router /departments [post]
func (h *DirectoryHandler) CreateDepartment(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	var req model.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}

	department, err := h.directory.CreateDepartment(c.Request.Context(), principal, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Department created", department))
}

// AddDepartmentCoordinator assigns a department coordinator by email
// @Router /departments/addCoordinator [post]
func (h *DirectoryHandler) AddDepartmentCoordinator(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	var req model.AssignCoordinatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}
	departmentID, err := util.ParseObjectID("departmentID", req.DepartmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.coordinator.Assign(c.Request.Context(), principal, model.KindDepartment, departmentID, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Coordinator added successfully", nil))
}

// ListProjects returns all projects
// @Router /projects [get]
func (h *DirectoryHandler) ListProjects(c *gin.Context) {
	projects, err := h.directory.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Projects retrieved", projects))
}

// CreateProject creates a project
// @Router /projects [post]
func (h *DirectoryHandler) CreateProject(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}

	project, err := h.directory.CreateProject(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Project created", project))
}

// UpdateProjectCoordinator assigns a project coordinator by email
// @Router /projects/updateCoordinator [post]
func (h *DirectoryHandler) UpdateProjectCoordinator(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	var req model.UpdateProjectCoordinatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}
	projectID, err := util.ParseObjectID("projectID", req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.coordinator.Assign(c.Request.Context(), principal, model.KindProject, projectID, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Coordinator updated successfully", nil))
}
