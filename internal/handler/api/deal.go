package api

import (
	"errors"
	"net/http"
	"strconv"

	"savesphere/internal/domain/deal"
	reqdto "savesphere/internal/handler/dto/request"
	resdto "savesphere/internal/handler/dto/response"
	"savesphere/internal/handler/httperr"
	"savesphere/internal/handler/middleware"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/usecase/commands"
	"savesphere/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	cmds commands.DealCommands
	q    queries.CatalogQueries
}

func NewDealHandler(cmds commands.DealCommands, q queries.CatalogQueries) *DealHandler {
	return &DealHandler{cmds: cmds, q: q}
}

// @Summary List deals
// @Description List deals with filtering and sorting
// @Tags deals
// @Produce json
// @Param search query string false "Search text over title, store, description, promo code, platform"
// @Param deal_type query string false "Deal type (in-store|online|affiliate|all)"
// @Param category query string false "Category filter"
// @Param sort query string false "Sort key (newest|expiring|popular|distance)"
// @Param lat query number false "Origin latitude for distance sort"
// @Param lng query number false "Origin longitude for distance sort"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.DealListResponse
// @Failure 400 {object} map[string]string
// @Router /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	opts := queries.CatalogOptions{
		Search:   c.Query("search"),
		DealType: c.Query("deal_type"),
		Sort:     c.Query("sort"),
	}
	if v := c.Query("category"); v != "" {
		opts.Category = &v
	}
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			opts.Limit = iv
		}
	}
	if origin, ok := parseOrigin(c); ok {
		opts.Origin = &origin
	}

	views, err := h.q.List(c.Request.Context(), opts)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidSort) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort key", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealList(views))
}

// @Summary Get deal
// @Description Get a deal with the viewer's redemption state
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealDetailResponse
// @Failure 404 {object} map[string]string
// @Router /deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	viewerID, _ := middleware.GetUserID(c)
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		if errors.Is(err, errs.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealDetailView(view))
}

// @Summary Post deal
// @Description Publish a new deal and credit the posting reward
// @Tags deals
// @Accept json
// @Produce json
// @Param request body reqdto.PostDealRequest true "Deal submission"
// @Success 201 {object} resdto.PostDealResponse
// @Failure 400 {object} map[string]string
// @Router /deals [post]
func (h *DealHandler) Post(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), "Internal error", nil)
		return
	}
	var req reqdto.PostDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Post(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidationFailure):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPostDealResult(result))
}

// @Summary Verify deal
// @Description Confirm a deal works, once per user, rewarding the verifier
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.EngagementResponse
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/verify [post]
func (h *DealHandler) Verify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), "Internal error", nil)
		return
	}
	result, err := h.cmds.Verify(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, errs.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEngagementResult(result))
}

// @Summary Flag deal
// @Description Report a stale or bogus deal, once per user
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.EngagementResponse
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/flag [post]
func (h *DealHandler) Flag(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), "Internal error", nil)
		return
	}
	result, err := h.cmds.Flag(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, errs.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEngagementResult(result))
}

// @Summary List categories
// @Tags deals
// @Produce json
// @Success 200 {object} resdto.CategoriesResponse
// @Router /categories [get]
func (h *DealHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CategoriesResponse{Categories: h.q.Categories()})
}

func parseOrigin(c *gin.Context) (deal.Coordinates, bool) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		return deal.Coordinates{}, false
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return deal.Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return deal.Coordinates{}, false
	}
	return deal.Coordinates{Lat: lat, Lng: lng}, true
}
