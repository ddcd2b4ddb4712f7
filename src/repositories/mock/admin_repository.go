package mock

import (
	"context"
	"time"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc          func(ctx context.Context, admin *models.AdminAccount) error
	GetByUsernameFunc   func(ctx context.Context, username string) (*models.AdminAccount, error)
	GetActiveByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*models.AdminAccount, error)
	UpdateLastLoginFunc func(ctx context.Context, id primitive.ObjectID, at time.Time) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.AdminAccount) error {
	m.Calls["Create"] = append(m.Calls["Create"], admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error) {
	m.Calls["GetByUsername"] = append(m.Calls["GetByUsername"], username)
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *AdminRepository) GetActiveByID(ctx context.Context, id primitive.ObjectID) (*models.AdminAccount, error) {
	m.Calls["GetActiveByID"] = append(m.Calls["GetActiveByID"], id)
	if m.GetActiveByIDFunc != nil {
		return m.GetActiveByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *AdminRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	m.Calls["UpdateLastLogin"] = append(m.Calls["UpdateLastLogin"], id)
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id, at)
	}
	return nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
