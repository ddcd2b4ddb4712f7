package handlers

import (
	"net/http"

	"github.com/alpinemaps/venue-map-server/src/services"
	"github.com/gin-gonic/gin"
)

// BannerHandler handles banner endpoints
type BannerHandler struct {
	banners *services.BannerService
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(banners *services.BannerService) *BannerHandler {
	return &BannerHandler{banners: banners}
}

// HandleList returns all banners sorted by display order.
func (bh *BannerHandler) HandleList(c *gin.Context) {
	banners, err := bh.banners.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, banners)
}

// HandleCreate creates a new banner.
func (bh *BannerHandler) HandleCreate(c *gin.Context) {
	var in services.BannerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	banner, err := bh.banners.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, banner)
}

// HandleUpdate applies a partial update to a banner.
func (bh *BannerHandler) HandleUpdate(c *gin.Context) {
	var in services.BannerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	banner, err := bh.banners.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, banner)
}

// HandleDelete removes a banner. Success is 204 with an empty body.
func (bh *BannerHandler) HandleDelete(c *gin.Context) {
	if err := bh.banners.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reorderRequest is the body for a bulk reorder.
type reorderRequest struct {
	Orders []services.BannerOrderInput `json:"orders"`
}

// HandleReorder applies a batch of {id, order} assignments and returns the
// re-sorted banner list.
func (bh *BannerHandler) HandleReorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Orders == nil {
		respondFail(c, http.StatusBadRequest, "Orders must be an array")
		return
	}

	banners, err := bh.banners.Reorder(c.Request.Context(), req.Orders)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, banners)
}
