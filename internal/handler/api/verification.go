package api

import (
	"errors"
	"net/http"

	reqdto "savesphere/internal/handler/dto/request"
	"savesphere/internal/handler/httperr"
	"savesphere/internal/handler/middleware"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	cmds commands.VerificationCommands
}

func NewVerificationHandler(cmds commands.VerificationCommands) *VerificationHandler {
	return &VerificationHandler{cmds: cmds}
}

// @Summary Run verification
// @Description Run a simulated verification task and wait for its result
// @Tags verifications
// @Accept json
// @Produce json
// @Param kind path string true "Verification kind (location|image|promo-code|affiliate)"
// @Param request body reqdto.VerificationRequest true "Verification subject"
// @Success 200 {object} commands.VerificationResult
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /verifications/{kind} [post]
func (h *VerificationHandler) Run(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), "Internal error", nil)
		return
	}
	var req reqdto.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	kind := c.Param("kind")
	if kind == "affiliate" {
		details, err := h.cmds.FetchAffiliateDetails(c.Request.Context(), req.Subject, userID)
		if err != nil {
			h.abort(c, err)
			return
		}
		c.JSON(http.StatusOK, details)
		return
	}

	result, err := h.cmds.Run(c.Request.Context(), kind, req.Subject, userID)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *VerificationHandler) abort(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnknownVerification):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown verification kind", nil)
	case errors.Is(err, errs.ErrVerificationPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Verification already in progress", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
