package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/service"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/util"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// UserHours sums a member's approved hours across both task namespaces
// @Router /stats/users/:userId/hours [get]
func (h *StatsHandler) UserHours(c *gin.Context) {
	userID, err := util.ParseObjectID("userId", c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	hours, err := h.stats.ApprovedHoursForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User hours retrieved", hours))
}

// DepartmentLeaderboard ranks a department's most active members
// @Router /stats/departments/:departmentId/leaderboard [get]
func (h *StatsHandler) DepartmentLeaderboard(c *gin.Context) {
	departmentID, err := util.ParseObjectID("departmentId", c.Param("departmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	board, err := h.stats.DepartmentLeaderboard(c.Request.Context(), departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Leaderboard retrieved", board))
}
