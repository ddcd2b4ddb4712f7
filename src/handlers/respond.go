package handlers

import (
	"errors"
	"net/http"

	"github.com/alpinemaps/venue-map-server/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// devMode controls error verbosity: in development the underlying error is
// included in 500 responses, in production it is not.
var devMode bool

// SetEnvironment configures response verbosity from the environment mode.
func SetEnvironment(env string) {
	devMode = env == "development"
}

// respondSuccess writes the uniform success envelope.
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondFail writes the uniform client-error envelope.
func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "fail",
		"message": message,
	})
}

// respondError is the single boundary translator from service errors to
// transport status codes. Handlers never pick status codes for failures
// themselves.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		respondFail(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrInvalidID), errors.Is(err, services.ErrNotFound):
		respondFail(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrDuplicateUsername) || mongo.IsDuplicateKeyError(err):
		respondFail(c, http.StatusBadRequest, "Duplicate field value entered")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondFail(c, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		body := gin.H{
			"status":  "error",
			"message": "An unexpected error occurred",
		}
		if devMode {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
