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

// UserHandler serves user listings and membership-affecting user updates.
type UserHandler struct {
	identity   *service.IdentityService
	membership *service.MembershipService
}

func NewUserHandler(identity *service.IdentityService, membership *service.MembershipService) *UserHandler {
	return &UserHandler{identity: identity, membership: membership}
}

// List returns all users
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.identity.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Users retrieved", users))
}

// ListByDepartment returns the members of one department
// @Router /users/byDepartment/:departmentId [get]
func (h *UserHandler) ListByDepartment(c *gin.Context) {
	departmentID, err := util.ParseObjectID("departmentId", c.Param("departmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	users, err := h.membership.ListDepartmentMembers(c.Request.Context(), departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Department members retrieved", users))
}

// AddToDepartment reassigns a user's department, cascading old department tasks
// @Router /users/addToDepartment [post]
func (h *UserHandler) AddToDepartment(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}

	var req model.AddToDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}
	userID, err := util.ParseObjectID("userId", req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	departmentID, err := util.ParseObjectID("departmentId", req.DepartmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.membership.ChangeUserDepartment(c.Request.Context(), principal, userID, departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User added to department successfully", user))
}

// Update edits a user's name parts and optionally their department
// @Router /users/:id [put]
func (h *UserHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}

	userID, err := util.ParseObjectID("id", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}

	user, err := h.membership.UpdateUser(c.Request.Context(), principal, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User updated successfully", user))
}
