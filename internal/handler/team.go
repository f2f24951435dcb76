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

// TeamHandler serves project team membership.
type TeamHandler struct {
	membership *service.MembershipService
}

func NewTeamHandler(membership *service.MembershipService) *TeamHandler {
	return &TeamHandler{membership: membership}
}

// List returns every membership pair
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.membership.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Teams retrieved", teams))
}

// Add creates a membership pair
// @Router /teams [post]
func (h *TeamHandler) Add(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	var req model.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}
	userID, err := util.ParseObjectID("userID", req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	projectID, err := util.ParseObjectID("projectID", req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	membership, err := h.membership.AddTeamMember(c.Request.Context(), principal, userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Member added to team", membership))
}

// Remove deletes a membership pair and the member's project tasks
// @Router /teams [delete]
func (h *TeamHandler) Remove(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	var req model.RemoveTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}
	userID, err := util.ParseObjectID("userID", req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	projectID, err := util.ParseObjectID("projectID", req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.membership.RemoveTeamMember(c.Request.Context(), principal, userID, projectID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Member removed from team successfully", nil))
}

// ListByProject returns a project's members
// @Router /teams/byProject/:projectId [get]
func (h *TeamHandler) ListByProject(c *gin.Context) {
	projectID, err := util.ParseObjectID("projectId", c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	members, err := h.membership.ListProjectMembers(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Project members retrieved", members))
}

// ListByUser returns the teams a user belongs to
// @Router /teams/byUser/:userId [get]
func (h *TeamHandler) ListByUser(c *gin.Context) {
	userID, err := util.ParseObjectID("userId", c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	teams, err := h.membership.ListTeamsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Teams retrieved", teams))
}
