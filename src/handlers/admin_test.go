package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories/mock"
	"github.com/alpinemaps/venue-map-server/src/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func newAdminRouter(t *testing.T, adminRepo *mock.AdminRepository, venueRepo *mock.VenueRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := services.NewTokenService("test-secret-for-unit-tests-32ch!", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	handler := NewAdminHandler(services.NewAdminService(adminRepo, venueRepo), tokens)

	router := gin.New()
	router.POST("/admin/signup", handler.HandleSignup)
	router.POST("/admin/login", handler.HandleLogin)
	router.GET("/admin/dashboard-stats", handler.HandleDashboardStats)
	return router
}

func postJSON(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSignup_Success(t *testing.T) {
	repo := mock.NewAdminRepository()
	router := newAdminRouter(t, repo, mock.NewVenueRepository())

	w := postJSON(router, "/admin/signup", `{"username": "alice", "password": "password123"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w.Body.Bytes())
	if body["message"] != "Admin account created successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	admin := body["data"].(map[string]interface{})["admin"].(map[string]interface{})
	if admin["username"] != "alice" {
		t.Errorf("expected username alice, got %v", admin["username"])
	}
	if admin["role"] != "admin" {
		t.Errorf("expected role admin, got %v", admin["role"])
	}
	// The hash must never be serialized.
	if strings.Contains(w.Body.String(), "passwordHash") {
		t.Error("response body leaks the password hash")
	}
	if len(repo.Calls["Create"]) != 1 {
		t.Errorf("expected one Create call, got %d", len(repo.Calls["Create"]))
	}
}

func TestHandleSignup_ShortPassword(t *testing.T) {
	repo := mock.NewAdminRepository()
	router := newAdminRouter(t, repo, mock.NewVenueRepository())

	w := postJSON(router, "/admin/signup", `{"username": "alice", "password": "short"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	if msg, _ := body["message"].(string); !strings.Contains(msg, "at least 8 characters") {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if len(repo.Calls["Create"]) != 0 {
		t.Error("Create must not be called for invalid input")
	}
}

func TestHandleSignup_DuplicateUsername(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.CreateFunc = func(ctx context.Context, admin *models.AdminAccount) error {
		return services.ErrDuplicateUsername
	}
	router := newAdminRouter(t, repo, mock.NewVenueRepository())

	w := postJSON(router, "/admin/signup", `{"username": "alice", "password": "password123"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	if body["message"] != "Duplicate field value entered" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func seedAdminAccount(t *testing.T, repo *mock.AdminRepository, password string) *models.AdminAccount {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	account := &models.AdminAccount{
		ID:           primitive.NewObjectID(),
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       true,
	}
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		if username != account.Username {
			return nil, services.ErrNotFound
		}
		return account, nil
	}
	return account
}

func TestHandleLogin_Success(t *testing.T) {
	repo := mock.NewAdminRepository()
	seedAdminAccount(t, repo, "password123")
	router := newAdminRouter(t, repo, mock.NewVenueRepository())

	w := postJSON(router, "/admin/login", `{"username": "alice", "password": "password123"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w.Body.Bytes())
	if token, _ := body["token"].(string); token == "" {
		t.Error("expected non-empty token")
	}
	admin := body["data"].(map[string]interface{})["admin"].(map[string]interface{})
	if admin["username"] != "alice" {
		t.Errorf("expected username alice, got %v", admin["username"])
	}
	if strings.Contains(w.Body.String(), "passwordHash") {
		t.Error("response body leaks the password hash")
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	repo := mock.NewAdminRepository()
	seedAdminAccount(t, repo, "password123")
	router := newAdminRouter(t, repo, mock.NewVenueRepository())

	w := postJSON(router, "/admin/login", `{"username": "alice", "password": "wrong-password"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	if body["message"] != "incorrect username or password" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestHandleLogin_UnknownUsername(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		return nil, services.ErrNotFound
	}
	router := newAdminRouter(t, repo, mock.NewVenueRepository())

	w := postJSON(router, "/admin/login", `{"username": "mallory", "password": "password123"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestHandleDashboardStats(t *testing.T) {
	venues := mock.NewVenueRepository()
	venues.CountFunc = func(ctx context.Context) (int64, error) { return 42, nil }
	router := newAdminRouter(t, mock.NewAdminRepository(), venues)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard-stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})
	if data["totalVenues"] != float64(42) {
		t.Errorf("expected totalVenues 42, got %v", data["totalVenues"])
	}
}
