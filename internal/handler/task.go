package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Theo3883/Hour-Tracking-Application/internal/middleware"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/service"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/util"
)

// TaskHandler serves one task namespace; the router mounts one instance for
// project tasks and one for department tasks.
type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns the whole namespace
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	views, err := h.tasks.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Tasks retrieved", views))
}

// ListByContainer returns tasks scoped to one project or department
// @Router /tasks/container/:containerId [get]
func (h *TaskHandler) ListByContainer(c *gin.Context) {
	containerID, err := util.ParseObjectID("containerId", c.Param("containerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	views, err := h.tasks.ListByContainer(c.Request.Context(), containerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Tasks retrieved", views))
}

// Create logs hours
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}

	contributorID := primitive.NilObjectID
	if req.UserID != "" {
		var err error
		contributorID, err = util.ParseObjectID("userID", req.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	containerID, err := util.ParseObjectID("containerID", req.ContainerID)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), principal, contributorID, containerID, req.Name, *req.HoursWorked)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Task created", task))
}

// Update applies a partial edit
// @Router /tasks/:id [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	taskID, err := util.ParseObjectID("id", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req model.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), principal, taskID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Task updated", task))
}

// SetApproval flips the approval flag
// @Router /tasks/:id/approval [post]
func (h *TaskHandler) SetApproval(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	taskID, err := util.ParseObjectID("id", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req model.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}

	task, err := h.tasks.SetApproval(c.Request.Context(), principal, taskID, *req.Approved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Approval updated", task))
}

// Delete removes a task
// @Router /tasks/:id [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	taskID, err := util.ParseObjectID("id", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), principal, taskID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Task deleted", nil))
}
