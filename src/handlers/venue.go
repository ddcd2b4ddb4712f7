package handlers

import (
	"net/http"
	"strconv"

	"github.com/alpinemaps/venue-map-server/src/services"
	"github.com/gin-gonic/gin"
)

// VenueHandler handles venue endpoints
type VenueHandler struct {
	venues *services.VenueService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(venues *services.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// parseQueryInt reads an integer query parameter, falling back to a default
// for missing or malformed values.
func parseQueryInt(c *gin.Context, name string, def int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// HandleList returns one page of venues with pagination metadata at the
// envelope top level.
func (vh *VenueHandler) HandleList(c *gin.Context) {
	result, err := vh.venues.List(c.Request.Context(), services.VenueListOptions{
		Search: c.Query("search"),
		Page:   parseQueryInt(c, "page", 0),
		Limit:  parseQueryInt(c, "limit", services.DefaultPageSize),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       result.Venues,
		"total":      result.Total,
		"page":       result.Page,
		"totalPages": result.TotalPages,
	})
}

// HandleGet returns a single venue.
func (vh *VenueHandler) HandleGet(c *gin.Context) {
	venue, err := vh.venues.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, venue)
}

// HandleCreate creates a new venue.
func (vh *VenueHandler) HandleCreate(c *gin.Context) {
	var in services.VenueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	venue, err := vh.venues.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, venue)
}

// HandleUpdate applies a partial update to a venue.
func (vh *VenueHandler) HandleUpdate(c *gin.Context) {
	var in services.VenueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	venue, err := vh.venues.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, venue)
}

// HandleDelete removes a venue. Success is 204 with an empty body.
func (vh *VenueHandler) HandleDelete(c *gin.Context) {
	if err := vh.venues.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleStats returns the per-category aggregation.
func (vh *VenueHandler) HandleStats(c *gin.Context) {
	stats, err := vh.venues.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, stats)
}
