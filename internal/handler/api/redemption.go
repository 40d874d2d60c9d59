package api

import (
	"context"
	"errors"
	"net/http"

	resdto "savesphere/internal/handler/dto/response"
	"savesphere/internal/handler/httperr"
	"savesphere/internal/handler/middleware"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
}

func NewRedemptionHandler(cmds commands.RedemptionCommands) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds}
}

// @Summary Show redemption code
// @Description Bind the deal's redemption code to the viewer (in-store only)
// @Tags redemptions
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /deals/{id}/redemption/code [post]
func (h *RedemptionHandler) ShowCode(c *gin.Context) {
	h.run(c, h.cmds.ShowCode)
}

// @Summary Redeem deal
// @Description Consume the deal and credit the channel's reward
// @Tags redemptions
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /deals/{id}/redemption/redeem [post]
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	h.run(c, h.cmds.Redeem)
}

// @Summary Upload receipt
// @Description Close the in-store redemption with the receipt bonus
// @Tags redemptions
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /deals/{id}/redemption/receipt [post]
func (h *RedemptionHandler) UploadReceipt(c *gin.Context) {
	h.run(c, h.cmds.UploadReceipt)
}

func (h *RedemptionHandler) run(c *gin.Context, action func(ctx context.Context, dealID, userID string) (*commands.RedemptionResult, error)) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), "Internal error", nil)
		return
	}
	result, err := action(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDealNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, errs.ErrWrongDealType):
			httperr.AbortWithError(c, http.StatusConflict, err, "Action not available for this deal type", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}
