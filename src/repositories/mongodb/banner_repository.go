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

// BannerRepository is the MongoDB implementation of repositories.BannerRepository
type BannerRepository struct {
	coll *mongo.Collection
}

// NewBannerRepository creates a banner repository over the given collection.
func NewBannerRepository(coll *mongo.Collection) *BannerRepository {
	return &BannerRepository{coll: coll}
}

func (r *BannerRepository) ListByOrder(ctx context.Context) ([]models.Banner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}
	defer cursor.Close(ctx)

	banners := []models.Banner{}
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}
	return banners, nil
}

func (r *BannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	res, err := r.coll.InsertOne(ctx, banner)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		banner.ID = oid
	}
	return nil
}

func buildBannerSetDoc(upd *models.BannerUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.Link != nil {
		set["link"] = *upd.Link
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}
	if upd.Active != nil {
		set["active"] = *upd.Active
	}
	return set
}

func (r *BannerRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.BannerUpdate) (*models.Banner, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": buildBannerSetDoc(upd, time.Now())}

	var banner models.Banner
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&banner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}
	return &banner, nil
}

func (r *BannerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if res.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// Reorder issues one BulkWrite of per-document $set updates. If the bulk
// fails mid-batch, already-applied updates stay applied.
func (r *BannerRepository) Reorder(ctx context.Context, orders []repositories.BannerOrder) error {
	if len(orders) == 0 {
		return nil
	}

	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(orders))
	for _, o := range orders {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": o.ID}).
			SetUpdate(bson.M{"$set": bson.M{"order": o.Order, "updatedAt": now}}))
	}

	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to bulk-update banner order: %w", err)
	}
	return nil
}

// Ensure BannerRepository implements the interface
var _ repositories.BannerRepository = (*BannerRepository)(nil)
