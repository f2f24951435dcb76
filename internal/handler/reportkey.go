package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Theo3883/Hour-Tracking-Application/internal/middleware"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/service"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/util"
)

// ReportKeyHandler manages report-access keys. All routes sit behind the
// admin guard.
type ReportKeyHandler struct {
	keys *service.ReportKeyService
}

func NewReportKeyHandler(keys *service.ReportKeyService) *ReportKeyHandler {
	return &ReportKeyHandler{keys: keys}
}

type generateReportKeyRequest struct {
	Name string `json:"name" binding:"required"`
}

// Generate mints a new key; the plain key is shown exactly once
// @Router /report-keys [post]
func (h *ReportKeyHandler) Generate(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("missing principal"))
		return
	}
	var req generateReportKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(c, apperror.InvalidInput("key name is required"))
		return
	}

	generated, err := h.keys.Generate(c.Request.Context(), principal.ID, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Report key generated", generated))
}

// List returns key metadata, never hashes
// @Router /report-keys [get]
func (h *ReportKeyHandler) List(c *gin.Context) {
	keys, err := h.keys.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Report keys retrieved", keys))
}

// Deactivate disables a key without deleting it
// @Router /report-keys/:id/deactivate [post]
func (h *ReportKeyHandler) Deactivate(c *gin.Context) {
	keyID, err := util.ParseObjectID("id", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.keys.Deactivate(c.Request.Context(), keyID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Report key deactivated", nil))
}

// Activate re-enables a key
// @Router /report-keys/:id/activate [post]
func (h *ReportKeyHandler) Activate(c *gin.Context) {
	keyID, err := util.ParseObjectID("id", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.keys.Activate(c.Request.Context(), keyID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Report key activated", nil))
}

// Revoke deletes a key permanently
// @Router /report-keys/:id [delete]
func (h *ReportKeyHandler) Revoke(c *gin.Context) {
	keyID, err := util.ParseObjectID("id", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.keys.Revoke(c.Request.Context(), keyID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Report key revoked", nil))
}
