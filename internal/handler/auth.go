package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/service"
	"github.com/Theo3883/Hour-Tracking-Application/internal/token"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

const (
	maxNameLength  = 100
	maxEmailLength = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthHandler handles the sign-in boundary: a verified Google profile comes
// in, a provisioned user and boundary token go out.
type AuthHandler struct {
	identity *service.IdentityService
	tokens   *token.Manager
}

func NewAuthHandler(identity *service.IdentityService, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{identity: identity, tokens: tokens}
}

// GoogleLogin handles provision-or-fetch for a verified Google principal
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req model.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), apperror.KindInvalidInput.Code()))
		return
	}

	// Validate and sanitize email
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email is required", apperror.KindInvalidInput.Code()))
		return
	}
	if len(req.Email) > maxEmailLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email exceeds maximum length", apperror.KindInvalidInput.Code()))
		return
	}
	if !emailRegex.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email format", apperror.KindInvalidInput.Code()))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) > maxNameLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Name exceeds maximum length", apperror.KindInvalidInput.Code()))
		return
	}

	user, err := h.identity.ResolveOrProvision(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	signed, err := h.tokens.Mint(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Authenticated", gin.H{
		"token": signed,
		"user": gin.H{
			"id":           user.ID.Hex(),
			"email":        user.Email,
			"firstName":    user.FirstName,
			"lastName":     user.LastName,
			"departmentID": user.DepartmentID.Hex(),
			"role":         user.Role,
		},
	}))
}
