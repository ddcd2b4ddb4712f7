package mock

import (
	"context"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BannerRepository is a mock implementation of repositories.BannerRepository
type BannerRepository struct {
	// Function stubs that can be overridden in tests
	ListByOrderFunc func(ctx context.Context) ([]models.Banner, error)
	CreateFunc      func(ctx context.Context, banner *models.Banner) error
	UpdateFunc      func(ctx context.Context, id primitive.ObjectID, upd *models.BannerUpdate) (*models.Banner, error)
	DeleteFunc      func(ctx context.Context, id primitive.ObjectID) error
	ReorderFunc     func(ctx context.Context, orders []repositories.BannerOrder) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewBannerRepository creates a new mock banner repository
func NewBannerRepository() *BannerRepository {
	return &BannerRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *BannerRepository) ListByOrder(ctx context.Context) ([]models.Banner, error) {
	m.Calls["ListByOrder"] = append(m.Calls["ListByOrder"], nil)
	if m.ListByOrderFunc != nil {
		return m.ListByOrderFunc(ctx)
	}
	return nil, nil
}

func (m *BannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	m.Calls["Create"] = append(m.Calls["Create"], banner)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, banner)
	}
	return nil
}

func (m *BannerRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.BannerUpdate) (*models.Banner, error) {
	m.Calls["Update"] = append(m.Calls["Update"], upd)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, nil
}

func (m *BannerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *BannerRepository) Reorder(ctx context.Context, orders []repositories.BannerOrder) error {
	m.Calls["Reorder"] = append(m.Calls["Reorder"], orders)
	if m.ReorderFunc != nil {
		return m.ReorderFunc(ctx, orders)
	}
	return nil
}

// Ensure BannerRepository implements the interface
var _ repositories.BannerRepository = (*BannerRepository)(nil)
