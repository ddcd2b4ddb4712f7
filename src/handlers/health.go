package handlers

import (
	"net/http"
	"time"

	"github.com/alpinemaps/venue-map-server/src/database"
	"github.com/gin-gonic/gin"
)

// HealthHandler handles the liveness endpoint
type HealthHandler struct {
	db          *database.Database
	environment string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Database, environment string) *HealthHandler {
	return &HealthHandler{db: db, environment: environment}
}

// HandleHealth reports liveness plus store connectivity state. The endpoint
// stays 200 even when the store is down so liveness and connectivity can be
// read independently.
func (hh *HealthHandler) HandleHealth(c *gin.Context) {
	dbStatus := "connected"
	if err := hh.db.Health(c.Request.Context()); err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     "Server is running",
		"time":        time.Now().UTC().Format(time.RFC3339),
		"environment": hh.environment,
		"database": gin.H{
			"status": dbStatus,
		},
	})
}
