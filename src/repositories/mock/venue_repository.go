package mock

import (
	"context"
	"time"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VenueRepository is a mock implementation of repositories.VenueRepository
type VenueRepository struct {
	// Function stubs that can be overridden in tests
	ListFunc              func(ctx context.Context, params repositories.VenueListParams) ([]models.Venue, int64, error)
	GetByIDFunc           func(ctx context.Context, id primitive.ObjectID) (*models.Venue, error)
	CreateFunc            func(ctx context.Context, venue *models.Venue) error
	UpdateFunc            func(ctx context.Context, id primitive.ObjectID, upd *models.VenueUpdate) (*models.Venue, error)
	DeleteFunc            func(ctx context.Context, id primitive.ObjectID) error
	CategoryStatsFunc     func(ctx context.Context) ([]models.CategoryStat, error)
	CountFunc             func(ctx context.Context) (int64, error)
	CountUpdatedSinceFunc func(ctx context.Context, since time.Time) (int64, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewVenueRepository creates a new mock venue repository
func NewVenueRepository() *VenueRepository {
	return &VenueRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *VenueRepository) List(ctx context.Context, params repositories.VenueListParams) ([]models.Venue, int64, error) {
	m.Calls["List"] = append(m.Calls["List"], params)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return nil, 0, nil
}

func (m *VenueRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	m.Calls["Create"] = append(m.Calls["Create"], venue)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, venue)
	}
	return nil
}

func (m *VenueRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.VenueUpdate) (*models.Venue, error) {
	m.Calls["Update"] = append(m.Calls["Update"], upd)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, nil
}

func (m *VenueRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *VenueRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	m.Calls["CategoryStats"] = append(m.Calls["CategoryStats"], nil)
	if m.CategoryStatsFunc != nil {
		return m.CategoryStatsFunc(ctx)
	}
	return nil, nil
}

func (m *VenueRepository) Count(ctx context.Context) (int64, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *VenueRepository) CountUpdatedSince(ctx context.Context, since time.Time) (int64, error) {
	m.Calls["CountUpdatedSince"] = append(m.Calls["CountUpdatedSince"], since)
	if m.CountUpdatedSinceFunc != nil {
		return m.CountUpdatedSinceFunc(ctx, since)
	}
	return 0, nil
}

// Ensure VenueRepository implements the interface
var _ repositories.VenueRepository = (*VenueRepository)(nil)
