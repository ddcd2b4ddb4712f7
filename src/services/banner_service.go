package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BannerService handles promotional banner operations
type BannerService struct {
	repo repositories.BannerRepository
}

// NewBannerService creates a new banner service
func NewBannerService(repo repositories.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// BannerInput is the write payload for create and update.
type BannerInput struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
	Link     *string `json:"link"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

// BannerOrderInput is one {id, order} pair of a bulk reorder request.
type BannerOrderInput struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// List returns all banners sorted by display order.
func (bs *BannerService) List(ctx context.Context) ([]models.Banner, error) {
	banners, err := bs.repo.ListByOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

// Create validates and stores a new banner with defaults applied.
func (bs *BannerService) Create(ctx context.Context, in *BannerInput) (*models.Banner, error) {
	now := time.Now()
	banner := &models.Banner{
		Order:     models.DefaultBannerOrder,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Name != nil {
		banner.Name = strings.TrimSpace(*in.Name)
	}
	if in.ImageURL != nil {
		banner.ImageURL = *in.ImageURL
	}
	if in.Link != nil {
		banner.Link = *in.Link
	}
	if in.Order != nil {
		banner.Order = *in.Order
	}
	if in.Active != nil {
		banner.Active = *in.Active
	}

	if err := validateBanner(banner); err != nil {
		return nil, err
	}

	if err := bs.repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}
	return banner, nil
}

// Update applies the provided fields as a partial update.
func (bs *BannerService) Update(ctx context.Context, id string, in *BannerInput) (*models.Banner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	upd := &models.BannerUpdate{
		ImageURL: in.ImageURL,
		Link:     in.Link,
		Order:    in.Order,
		Active:   in.Active,
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		upd.Name = &name
	}

	verr := &ValidationError{}
	if upd.Name != nil && *upd.Name == "" {
		verr.add("A banner must have a name")
	}
	if upd.ImageURL != nil && *upd.ImageURL == "" {
		verr.add("A banner must have an image URL")
	}
	if upd.Link != nil && *upd.Link == "" {
		verr.add("A banner must have a link URL")
	}
	if err := verr.errOrNil(); err != nil {
		return nil, err
	}

	return bs.repo.Update(ctx, oid, upd)
}

// Delete removes a banner by id.
func (bs *BannerService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return bs.repo.Delete(ctx, oid)
}

// Reorder applies a batch of order assignments in one bulk write and
// returns the resulting list. A mid-batch failure leaves the batch
// partially applied; the store's bulk guarantee is all we rely on.
func (bs *BannerService) Reorder(ctx context.Context, orders []BannerOrderInput) ([]models.Banner, error) {
	assignments := make([]repositories.BannerOrder, 0, len(orders))
	for _, o := range orders {
		oid, err := primitive.ObjectIDFromHex(o.ID)
		if err != nil {
			return nil, ErrInvalidID
		}
		assignments = append(assignments, repositories.BannerOrder{ID: oid, Order: o.Order})
	}

	if err := bs.repo.Reorder(ctx, assignments); err != nil {
		return nil, fmt.Errorf("failed to reorder banners: %w", err)
	}
	return bs.List(ctx)
}

func validateBanner(b *models.Banner) error {
	verr := &ValidationError{}
	if b.Name == "" {
		verr.add("A banner must have a name")
	}
	if b.ImageURL == "" {
		verr.add("A banner must have an image URL")
	}
	if b.Link == "" {
		verr.add("A banner must have a link URL")
	}
	return verr.errOrNil()
}
