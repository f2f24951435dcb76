package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/service"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/util"
)

// ReportHandler serves the read-only feed consumed by the external report
// renderer. Routes sit behind the report-key middleware, not user auth.
type ReportHandler struct {
	stats *service.StatsService
}

func NewReportHandler(stats *service.StatsService) *ReportHandler {
	return &ReportHandler{stats: stats}
}

// Leaderboards returns every department's leaderboard in one payload
// @Router /report/leaderboards [get]
func (h *ReportHandler) Leaderboards(c *gin.Context) {
	boards, err := h.stats.AllDepartmentLeaderboards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Leaderboards retrieved", boards))
}

// DepartmentLeaderboard returns one department's leaderboard
// @Router /report/departments/:departmentId/leaderboard [get]
func (h *ReportHandler) DepartmentLeaderboard(c *gin.Context) {
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
