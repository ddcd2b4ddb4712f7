package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a promotional banner shown by the client, ordered by Order ascending.
type Banner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	Link      string             `bson:"link" json:"link"`
	Order     int                `bson:"order" json:"order"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BannerUpdate carries a partial banner update. Nil fields are left untouched.
type BannerUpdate struct {
	Name     *string
	ImageURL *string
	Link     *string
	Order    *int
	Active   *bool
}
