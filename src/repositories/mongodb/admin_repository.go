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
)

// AdminRepository is the MongoDB implementation of repositories.AdminRepository
type AdminRepository struct {
	coll *mongo.Collection
}

// NewAdminRepository creates an admin repository over the given collection.
func NewAdminRepository(coll *mongo.Collection) *AdminRepository {
	return &AdminRepository{coll: coll}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminAccount) error {
	res, err := r.coll.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return services.ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error) {
	var admin models.AdminAccount
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin account: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) GetActiveByID(ctx context.Context, id primitive.ObjectID) (*models.AdminAccount, error) {
	var admin models.AdminAccount
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "active": true}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin account: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"lastLoginAt": at, "updatedAt": at}})
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
