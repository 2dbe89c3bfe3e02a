package handler

import (
	"context"
	"fmt"
	"strconv"

	"address-book-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NearbyHandler handles proximity search requests
type NearbyHandler struct {
	service NearbyService
}

// NearbyService interface for dependency injection
type NearbyService interface {
	FindNearby(context.Context, models.NearbyQuery) ([]models.Address, error)
}

// NewNearbyHandler creates a new nearby handler
func NewNearbyHandler(svc NearbyService) *NearbyHandler {
	return &NearbyHandler{service: svc}
}

// FindNearby handles GET /addresses/nearby/ requests
//
//	@Summary	Find addresses within a radius
//	@Tags		addresses
//	@Produce	json
//	@Param		lat			query		number	true	"Latitude of the search origin"
//	@Param		lon			query		number	true	"Longitude of the search origin"
//	@Param		distance	query		number	true	"Search radius in kilometers"
//	@Success	200			{object}	Response{data=[]models.Address}
//	@Failure	400			{object}	Response
//	@Failure	500			{object}	Response
//	@Router		/addresses/nearby/ [get]
func (h *NearbyHandler) FindNearby(c *gin.Context) {
	var q models.NearbyQuery
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"lat", &q.Latitude},
		{"lon", &q.Longitude},
		{"distance", &q.Distance},
	} {
		raw, ok := c.GetQuery(p.name)
		if !ok || raw == "" {
			respondBadRequest(c, fmt.Sprintf("missing required query parameter '%s'", p.name), "")
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondBadRequest(c, fmt.Sprintf("invalid %s format", p.name), "")
			return
		}
		*p.dst = v
	}

	zerolog.Ctx(c.Request.Context()).Info().
		Float64("lat", q.Latitude).
		Float64("lon", q.Longitude).
		Float64("distance", q.Distance).
		Msg("nearby search")

	addresses, err := h.service.FindNearby(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "nearby search")
		return
	}

	respondList(c, addresses)
}
