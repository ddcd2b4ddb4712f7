package repositories

import (
	"context"
	"time"

	"github.com/alpinemaps/venue-map-server/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VenueListParams is the resolved query window for a venue listing.
// Skip/Limit are already computed from page and page size.
type VenueListParams struct {
	Search string
	Skip   int64
	Limit  int64
}

// BannerOrder assigns a display order to one banner in a bulk reorder.
type BannerOrder struct {
	ID    primitive.ObjectID
	Order int
}

// VenueRepository defines the interface for venue data access
type VenueRepository interface {
	// List returns one page of venues plus the total match count.
	// Sort order is fixed: importance descending, then name ascending.
	List(ctx context.Context, params VenueListParams) ([]models.Venue, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error)
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, id primitive.ObjectID, upd *models.VenueUpdate) (*models.Venue, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Aggregations
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
	Count(ctx context.Context) (int64, error)
	CountUpdatedSince(ctx context.Context, since time.Time) (int64, error)
}

// BannerRepository defines the interface for banner data access
type BannerRepository interface {
	// ListByOrder returns all banners sorted by display order ascending.
	ListByOrder(ctx context.Context) ([]models.Banner, error)
	Create(ctx context.Context, banner *models.Banner) error
	Update(ctx context.Context, id primitive.ObjectID, upd *models.BannerUpdate) (*models.Banner, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Reorder applies all order assignments as a single bulk write. Atomicity
	// is whatever the store's bulk primitive provides; there is no
	// application-level compensation on partial failure.
	Reorder(ctx context.Context, orders []BannerOrder) error
}

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminAccount) error
	GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error)
	// GetActiveByID resolves a token subject to an active account only.
	GetActiveByID(ctx context.Context, id primitive.ObjectID) (*models.AdminAccount, error)
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
}
