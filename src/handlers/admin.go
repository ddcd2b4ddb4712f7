package handlers

import (
	"net/http"

	"github.com/alpinemaps/venue-map-server/src/services"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin account endpoints
type AdminHandler struct {
	admins *services.AdminService
	tokens *services.TokenService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admins *services.AdminService, tokens *services.TokenService) *AdminHandler {
	return &AdminHandler{admins: admins, tokens: tokens}
}

// credentialsRequest is the body for both signup and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleSignup creates a new admin account with the default role.
func (ah *AdminHandler) HandleSignup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := ah.admins.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Admin account created successfully",
		"data":    gin.H{"admin": admin},
	})
}

// HandleLogin authenticates the admin and returns a signed token alongside
// the account (hash excluded by serialization).
func (ah *AdminHandler) HandleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := ah.admins.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ah.tokens.Issue(admin.ID.Hex())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  token,
		"data":   gin.H{"admin": admin},
	})
}

// HandleDashboardStats returns venue counters for the admin dashboard.
func (ah *AdminHandler) HandleDashboardStats(c *gin.Context) {
	stats, err := ah.admins.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, stats)
}
