package services

import (
	"context"
	"testing"
	"time"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup_HashesPassword(t *testing.T) {
	repo := mock.NewAdminRepository()
	svc := NewAdminService(repo, mock.NewVenueRepository())

	admin, err := svc.Signup(context.Background(), "  alice ", "correct-horse-battery")
	require.NoError(t, err)

	assert.Equal(t, "alice", admin.Username)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.Active)
	require.NotNil(t, admin.PasswordChangedAt)
	assert.True(t, admin.PasswordChangedAt.Before(time.Now()))

	assert.NotEqual(t, "correct-horse-battery", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("correct-horse-battery")))
}

func TestSignup_Validation(t *testing.T) {
	svc := NewAdminService(mock.NewAdminRepository(), mock.NewVenueRepository())

	var verr *ValidationError

	_, err := svc.Signup(context.Background(), "", "password123")
	require.ErrorAs(t, err, &verr)

	_, err = svc.Signup(context.Background(), "alice", "")
	require.ErrorAs(t, err, &verr)

	_, err = svc.Signup(context.Background(), "alice", "short")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "at least 8 characters")
}

func TestSignup_DuplicateUsername(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.CreateFunc = func(ctx context.Context, admin *models.AdminAccount) error {
		return ErrDuplicateUsername
	}
	svc := NewAdminService(repo, mock.NewVenueRepository())

	_, err := svc.Signup(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func testAccount(t *testing.T, password string) *models.AdminAccount {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.AdminAccount{
		ID:           primitive.NewObjectID(),
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       true,
	}
}

func TestAuthenticate_Success(t *testing.T) {
	account := testAccount(t, "password123")
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		return account, nil
	}
	svc := NewAdminService(repo, mock.NewVenueRepository())

	admin, err := svc.Authenticate(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.NotNil(t, admin.LastLoginAt)
	assert.Len(t, repo.Calls["UpdateLastLogin"], 1)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	account := testAccount(t, "password123")
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		return account, nil
	}
	svc := NewAdminService(repo, mock.NewVenueRepository())

	_, err := svc.Authenticate(context.Background(), "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUsername(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		return nil, ErrNotFound
	}
	svc := NewAdminService(repo, mock.NewVenueRepository())

	// Same error as a wrong password: usernames are not probeable.
	_, err := svc.Authenticate(context.Background(), "mallory", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetActiveByID_MalformedID(t *testing.T) {
	svc := NewAdminService(mock.NewAdminRepository(), mock.NewVenueRepository())

	_, err := svc.GetActiveByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnknownIdentity)
}

func TestGetDashboardStats(t *testing.T) {
	venues := mock.NewVenueRepository()
	venues.CategoryStatsFunc = func(ctx context.Context) ([]models.CategoryStat, error) {
		return []models.CategoryStat{{Category: "restaurants", Count: 9}}, nil
	}
	venues.CountFunc = func(ctx context.Context) (int64, error) { return 20, nil }
	venues.CountUpdatedSinceFunc = func(ctx context.Context, since time.Time) (int64, error) {
		assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), since, time.Minute)
		return 4, nil
	}
	svc := NewAdminService(mock.NewAdminRepository(), venues)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(20), stats.TotalVenues)
	assert.Equal(t, int64(4), stats.RecentUpdates)
	assert.Equal(t, 1, stats.TotalCategories)
}
