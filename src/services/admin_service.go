package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the original accounts were hashed with, so
// existing hashes keep verifying.
const bcryptCost = 12

// AdminService handles admin account operations
type AdminService struct {
	admins repositories.AdminRepository
	venues repositories.VenueRepository
}

// NewAdminService creates a new admin service
func NewAdminService(admins repositories.AdminRepository, venues repositories.VenueRepository) *AdminService {
	return &AdminService{admins: admins, venues: venues}
}

// Signup creates a new admin account with a hashed password and the default
// admin role. The password hash never leaves this service.
func (as *AdminService) Signup(ctx context.Context, username, password string) (*models.AdminAccount, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &ValidationError{Messages: []string{"Please provide username and password"}}
	}
	if len(password) < 8 {
		return nil, &ValidationError{Messages: []string{"Password must be at least 8 characters"}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// passwordChangedAt is backdated one second so a token issued in the
	// same second as the hash still passes the freshness check.
	now := time.Now()
	changedAt := now.Add(-time.Second)
	admin := &models.AdminAccount{
		Username:          username,
		PasswordHash:      string(hash),
		Role:              models.RoleAdmin,
		PasswordChangedAt: &changedAt,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := as.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Authenticate verifies username and password and records the login time.
func (as *AdminService) Authenticate(ctx context.Context, username, password string) (*models.AdminAccount, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Messages: []string{"Please provide username and password"}}
	}

	admin, err := as.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Last-login bookkeeping must not fail the login itself.
	now := time.Now()
	if err := as.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		log.Warn().Err(err).Str("username", admin.Username).Msg("failed to update last login")
	}
	admin.LastLoginAt = &now

	return admin, nil
}

// GetActiveByID resolves a token subject to an active admin account.
func (as *AdminService) GetActiveByID(ctx context.Context, id string) (*models.AdminAccount, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUnknownIdentity
	}
	admin, err := as.admins.GetActiveByID(ctx, oid)
	if err != nil {
		return nil, ErrUnknownIdentity
	}
	return admin, nil
}

// DashboardStats summarizes the venue collection for the admin dashboard.
type DashboardStats struct {
	TotalVenues     int64                 `json:"totalVenues"`
	CategoryStats   []models.CategoryStat `json:"categoryStats"`
	RecentUpdates   int64                 `json:"recentUpdates"`
	TotalCategories int                   `json:"totalCategories"`
}

// GetDashboardStats returns venue counters for the admin dashboard.
func (as *AdminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats, err := as.venues.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category stats: %w", err)
	}
	total, err := as.venues.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count venues: %w", err)
	}
	recent, err := as.venues.CountUpdatedSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent updates: %w", err)
	}

	return &DashboardStats{
		TotalVenues:     total,
		CategoryStats:   stats,
		RecentUpdates:   recent,
		TotalCategories: len(stats),
	}, nil
}
