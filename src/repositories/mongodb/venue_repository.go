package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories"
	"github.com/alpinemaps/venue-map-server/src/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VenueRepository is the MongoDB implementation of repositories.VenueRepository
type VenueRepository struct {
	coll *mongo.Collection
}

// NewVenueRepository creates a venue repository over the given collection.
func NewVenueRepository(coll *mongo.Collection) *VenueRepository {
	return &VenueRepository{coll: coll}
}

// venueSearchFilter builds a case-insensitive partial-match disjunction over
// name, address and category. An empty search matches everything.
func venueSearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	regex := primitive.Regex{Pattern: search, Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": regex},
		bson.M{"address": regex},
		bson.M{"category": regex},
	}}
}

// venueSortOrder is the fixed listing sort: importance descending, then
// name ascending as a deterministic tie-break.
func venueSortOrder() bson.D {
	return bson.D{{Key: "importance", Value: -1}, {Key: "name", Value: 1}}
}

func (r *VenueRepository) List(ctx context.Context, params repositories.VenueListParams) ([]models.Venue, int64, error) {
	filter := venueSearchFilter(params.Search)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count venues: %w", err)
	}

	opts := options.Find().
		SetSort(venueSortOrder()).
		SetSkip(params.Skip).
		SetLimit(params.Limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query venues: %w", err)
	}
	defer cursor.Close(ctx)

	venues := []models.Venue{}
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, 0, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, total, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	var venue models.Venue
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&venue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return &venue, nil
}

func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	res, err := r.coll.InsertOne(ctx, venue)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		venue.ID = oid
	}
	return nil
}

// buildVenueSetDoc turns the non-nil fields of a partial update into a $set
// document. updatedAt and lastUpdated always move.
func buildVenueSetDoc(upd *models.VenueUpdate, now time.Time) bson.M {
	set := bson.M{
		"updatedAt":   now,
		"lastUpdated": now,
	}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Category != nil {
		set["category"] = upd.Category
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Importance != nil {
		set["importance"] = *upd.Importance
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Website != nil {
		set["website"] = *upd.Website
	}
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	if upd.OpeningHours != nil {
		set["openingHours"] = *upd.OpeningHours
	}
	if upd.Is247 != nil {
		set["is24_7"] = *upd.Is247
	}
	if upd.Photos != nil {
		set["photos"] = upd.Photos
	}
	if upd.PlaceType != nil {
		set["placeType"] = upd.PlaceType
	}
	return set
}

func (r *VenueRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.VenueUpdate) (*models.Venue, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": buildVenueSetDoc(upd, time.Now())}

	var venue models.Venue
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&venue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return &venue, nil
}

func (r *VenueRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	if res.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// CategoryStats unwinds the category array so a multi-category venue lands in
// each of its buckets, then groups and sorts by count descending.
func (r *VenueRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$category"}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$category",
			"count":         bson.M{"$sum": 1},
			"avgRating":     bson.M{"$avg": "$rating"},
			"avgImportance": bson.M{"$avg": "$importance"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to run category aggregation: %w", err)
	}
	defer cursor.Close(ctx)

	stats := []models.CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode category stats: %w", err)
	}
	return stats, nil
}

func (r *VenueRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *VenueRepository) CountUpdatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"updatedAt": bson.M{"$gte": since}})
}

// Ensure VenueRepository implements the interface
var _ repositories.VenueRepository = (*VenueRepository)(nil)
