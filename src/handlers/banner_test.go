package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories"
	"github.com/alpinemaps/venue-map-server/src/repositories/mock"
	"github.com/alpinemaps/venue-map-server/src/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBannerRouter(repo *mock.BannerRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewBannerHandler(services.NewBannerService(repo))

	router := gin.New()
	router.GET("/banners", handler.HandleList)
	router.POST("/banners", handler.HandleCreate)
	router.PATCH("/banners/reorder", handler.HandleReorder)
	router.PATCH("/banners/:id", handler.HandleUpdate)
	router.DELETE("/banners/:id", handler.HandleDelete)
	return router
}

func TestHandleBannerList_SortedByOrder(t *testing.T) {
	repo := mock.NewBannerRepository()
	repo.ListByOrderFunc = func(ctx context.Context) ([]models.Banner, error) {
		return []models.Banner{
			{Name: "First", Order: 1},
			{Name: "Second", Order: 2},
		}, nil
	}
	router := newBannerRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banners", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 banners, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["name"] != "First" {
		t.Errorf("expected First at order position 0, got %v", first["name"])
	}
}

func TestHandleBannerCreate_Validation(t *testing.T) {
	repo := mock.NewBannerRepository()
	router := newBannerRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/banners", strings.NewReader(`{"name": "Winter"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w.Body.Bytes())
	if msg, _ := body["message"].(string); !strings.Contains(msg, "A banner must have an image URL") {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if len(repo.Calls["Create"]) != 0 {
		t.Error("Create must not be called for invalid input")
	}
}

func TestHandleBannerCreate_Defaults(t *testing.T) {
	repo := mock.NewBannerRepository()
	router := newBannerRouter(repo)

	payload := `{
		"name": "Winter Season",
		"imageUrl": "https://cdn.example.com/winter.jpg",
		"link": "https://example.com/winter"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/banners", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})
	if data["order"] != float64(models.DefaultBannerOrder) {
		t.Errorf("expected default order %d, got %v", models.DefaultBannerOrder, data["order"])
	}
	if data["active"] != true {
		t.Errorf("expected active true, got %v", data["active"])
	}
}

func TestHandleReorder_Success(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	repo := mock.NewBannerRepository()
	repo.ListByOrderFunc = func(ctx context.Context) ([]models.Banner, error) {
		return []models.Banner{
			{ID: second, Name: "Second", Order: 1},
			{ID: first, Name: "First", Order: 2},
		}, nil
	}
	router := newBannerRouter(repo)

	payload := fmt.Sprintf(`{"orders": [{"id": %q, "order": 2}, {"id": %q, "order": 1}]}`,
		first.Hex(), second.Hex())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/banners/reorder", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	assignments := repo.Calls["Reorder"][0].([]repositories.BannerOrder)
	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assignments))
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].([]interface{})
	if data[0].(map[string]interface{})["name"] != "Second" {
		t.Errorf("expected re-sorted list starting with Second, got %v", data[0])
	}
}

func TestHandleReorder_MissingOrders(t *testing.T) {
	repo := mock.NewBannerRepository()
	router := newBannerRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/banners/reorder", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	if body["message"] != "Orders must be an array" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if len(repo.Calls["Reorder"]) != 0 {
		t.Error("Reorder must not be called without an orders array")
	}
}

func TestHandleBannerDelete_NoContent(t *testing.T) {
	router := newBannerRouter(mock.NewBannerRepository())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/banners/"+primitive.NewObjectID().Hex(), nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
}
