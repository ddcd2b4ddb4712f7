package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alpinemaps/venue-map-server/src/database"
	"github.com/gin-gonic/gin"
)

func TestHandleHealth_StoreDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// No client wired: connectivity must read disconnected while the
	// endpoint itself stays 200.
	handler := NewHealthHandler(database.NewFromClient(nil, "test"), "test")

	router := gin.New()
	router.GET("/health", handler.HandleHealth)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	if body["status"] != "success" {
		t.Errorf("expected status success, got %v", body["status"])
	}
	if body["environment"] != "test" {
		t.Errorf("expected environment test, got %v", body["environment"])
	}
	db := body["database"].(map[string]interface{})
	if db["status"] != "disconnected" {
		t.Errorf("expected database disconnected, got %v", db["status"])
	}
}
