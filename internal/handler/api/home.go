package api

import (
	"net/http"
	"strconv"

	"savesphere/internal/domain/deal"
	resdto "savesphere/internal/handler/dto/response"
	"savesphere/internal/handler/httperr"
	"savesphere/internal/handler/middleware"
	"savesphere/internal/pkg/config"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the home page slices. Each slice is a thin query
// over the catalog facade.
type HomeHandler struct {
	q     queries.CatalogQueries
	users queries.UserQueries
	cfg   config.CatalogConfig
}

func NewHomeHandler(q queries.CatalogQueries, users queries.UserQueries, cfg config.CatalogConfig) *HomeHandler {
	return &HomeHandler{q: q, users: users, cfg: cfg}
}

// @Summary Featured deals
// @Description Soonest-expiring deals that have not expired
// @Tags home
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.DealListResponse
// @Router /home/featured [get]
func (h *HomeHandler) Featured(c *gin.Context) {
	views, err := h.q.Featured(c.Request.Context(), parseLimit(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealList(views))
}

// @Summary Nearby deals
// @Description Physical deals within the radius of the given coordinate
// @Tags home
// @Produce json
// @Param lat query number true "Origin latitude"
// @Param lng query number true "Origin longitude"
// @Param radius_km query number false "Radius in km (default from config)"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.DealListResponse
// @Failure 400 {object} map[string]string
// @Router /home/nearby [get]
func (h *HomeHandler) Nearby(c *gin.Context) {
	origin, ok := parseOrigin(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("lat and lng are required"), "Invalid coordinates", nil)
		return
	}
	radius := h.cfg.NearbyRadiusKm
	if v := c.Query("radius_km"); v != "" {
		if fv, err := strconv.ParseFloat(v, 64); err == nil && fv > 0 {
			radius = fv
		}
	}
	views, err := h.q.Nearby(c.Request.Context(), origin, radius, parseLimit(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealList(views))
}

// @Summary Trending deals
// @Description Most-verified deals targeted at the viewer's segment
// @Tags home
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.DealListResponse
// @Router /home/trending [get]
func (h *HomeHandler) Trending(c *gin.Context) {
	audience := deal.UserCategory(c.Query("audience"))
	if audience == "" {
		audience = h.viewerCategory(c)
	}
	views, err := h.q.Trending(c.Request.Context(), audience, parseLimit(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealList(views))
}

func (h *HomeHandler) viewerCategory(c *gin.Context) deal.UserCategory {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return ""
	}
	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		return ""
	}
	return deal.UserCategory(u.Category)
}

func parseLimit(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			return iv
		}
	}
	return 0
}
