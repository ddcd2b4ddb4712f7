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

// DefaultPageSize is applied when the request carries no limit parameter.
const DefaultPageSize = 15

// VenueService handles venue listing, writes and aggregation.
type VenueService struct {
	repo repositories.VenueRepository
}

// NewVenueService creates a new venue service
func NewVenueService(repo repositories.VenueRepository) *VenueService {
	return &VenueService{repo: repo}
}

// VenueListOptions are the raw listing inputs taken from the query string.
// Page is zero-based.
type VenueListOptions struct {
	Search string
	Page   int64
	Limit  int64
}

// VenueList is one page of venues plus pagination metadata.
type VenueList struct {
	Venues     []models.Venue
	Total      int64
	Page       int64
	TotalPages int64
}

// VenueInput is the write payload for create and update. The flexible field
// types absorb the client's loose formats (comma-separated categories,
// {lat,lng} locations, stringly-typed importance) before validation.
type VenueInput struct {
	Name         *string             `json:"name"`
	Category     CategoryList        `json:"category"`
	Location     *LocationInput      `json:"location"`
	Importance   *FlexInt            `json:"importance"`
	Address      *string             `json:"address"`
	Phone        *string             `json:"phone"`
	Website      *string             `json:"website"`
	Rating       *float64            `json:"rating"`
	OpeningHours *models.WeeklyHours `json:"openingHours"`
	Is247        *bool               `json:"is24_7"`
	Photos       []string            `json:"photos"`
	PlaceType    []string            `json:"placeType"`
}

// paginationWindow translates a zero-based page into the store's skip/limit
// window, falling back to defaults for missing or nonsense values.
func paginationWindow(page, limit int64) (skip, lim int64) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}
	return page * limit, limit
}

// totalPages computes ceil(total / limit).
func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// List returns one page of venues matching the optional search term,
// sorted by importance descending then name ascending.
func (vs *VenueService) List(ctx context.Context, opts VenueListOptions) (*VenueList, error) {
	skip, limit := paginationWindow(opts.Page, opts.Limit)
	page := skip / limit

	venues, total, err := vs.repo.List(ctx, repositories.VenueListParams{
		Search: strings.TrimSpace(opts.Search),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	return &VenueList{
		Venues:     venues,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Get returns a single venue by id.
func (vs *VenueService) Get(ctx context.Context, id string) (*models.Venue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return vs.repo.GetByID(ctx, oid)
}

// Create normalizes, validates and stores a new venue.
func (vs *VenueService) Create(ctx context.Context, in *VenueInput) (*models.Venue, error) {
	now := time.Now()
	venue := &models.Venue{
		Importance:  models.DefaultImportance,
		LastUpdated: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Name != nil {
		venue.Name = strings.TrimSpace(*in.Name)
	}
	venue.Category = in.Category
	if in.Location != nil {
		venue.Location = in.Location.Point()
	}
	if in.Importance != nil {
		venue.Importance = clampImportance(int(*in.Importance))
	}
	if in.Address != nil {
		venue.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		venue.Phone = *in.Phone
	}
	if in.Website != nil {
		venue.Website = *in.Website
	}
	if in.Rating != nil {
		venue.Rating = *in.Rating
	}
	venue.OpeningHours = in.OpeningHours
	if in.Is247 != nil {
		venue.Is247 = *in.Is247
	}
	venue.Photos = in.Photos
	venue.PlaceType = in.PlaceType

	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	if err := vs.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return venue, nil
}

// Update normalizes and validates the provided fields only, then applies
// them as a partial update.
func (vs *VenueService) Update(ctx context.Context, id string, in *VenueInput) (*models.Venue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	upd := &models.VenueUpdate{
		Phone:        in.Phone,
		Website:      in.Website,
		Rating:       in.Rating,
		OpeningHours: in.OpeningHours,
		Is247:        in.Is247,
		Photos:       in.Photos,
		PlaceType:    in.PlaceType,
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		upd.Name = &name
	}
	if in.Category != nil {
		upd.Category = in.Category
	}
	if in.Location != nil {
		point := in.Location.Point()
		upd.Location = &point
	}
	if in.Importance != nil {
		importance := clampImportance(int(*in.Importance))
		upd.Importance = &importance
	}
	if in.Address != nil {
		address := strings.TrimSpace(*in.Address)
		upd.Address = &address
	}

	if err := validateVenueUpdate(upd); err != nil {
		return nil, err
	}

	return vs.repo.Update(ctx, oid, upd)
}

// Delete removes a venue by id.
func (vs *VenueService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return vs.repo.Delete(ctx, oid)
}

// VenueStats is the per-category aggregation plus collection-wide counters.
type VenueStats struct {
	CategoryStats   []models.CategoryStat `json:"categoryStats"`
	TotalVenues     int64                 `json:"totalVenues"`
	TotalCategories int                   `json:"totalCategories"`
	RecentUpdates   int64                 `json:"recentUpdates"`
}

// Stats aggregates venues per category (multi-category venues count once per
// category), with buckets sorted by count descending.
func (vs *VenueService) Stats(ctx context.Context) (*VenueStats, error) {
	stats, err := vs.repo.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate venue stats: %w", err)
	}
	total, err := vs.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count venues: %w", err)
	}
	recent, err := vs.repo.CountUpdatedSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent updates: %w", err)
	}

	return &VenueStats{
		CategoryStats:   stats,
		TotalVenues:     total,
		TotalCategories: len(stats),
		RecentUpdates:   recent,
	}, nil
}

// validateVenue enforces the write-time invariants on a full venue document.
func validateVenue(v *models.Venue) error {
	verr := &ValidationError{}
	if v.Name == "" {
		verr.add("Please add a venue name")
	}
	validateCategories(v.Category, verr)
	if !v.Location.Valid() {
		verr.add("Invalid coordinates")
	}
	if v.Address == "" {
		verr.add("Please add an address")
	}
	if v.Rating < 0 || v.Rating > 5 {
		verr.add("Rating must be between 0 and 5")
	}
	return verr.errOrNil()
}

// validateVenueUpdate checks only the fields present in a partial update.
func validateVenueUpdate(upd *models.VenueUpdate) error {
	verr := &ValidationError{}
	if upd.Name != nil && *upd.Name == "" {
		verr.add("Please add a venue name")
	}
	if upd.Category != nil {
		validateCategories(upd.Category, verr)
	}
	if upd.Location != nil && !upd.Location.Valid() {
		verr.add("Invalid coordinates")
	}
	if upd.Address != nil && *upd.Address == "" {
		verr.add("Please add an address")
	}
	if upd.Rating != nil && (*upd.Rating < 0 || *upd.Rating > 5) {
		verr.add("Rating must be between 0 and 5")
	}
	return verr.errOrNil()
}

func validateCategories(categories []string, verr *ValidationError) {
	if len(categories) == 0 {
		verr.add("Please add at least one category")
		return
	}
	for _, cat := range categories {
		if !models.IsValidCategory(cat) {
			verr.add("Please provide valid categories")
			return
		}
	}
}
