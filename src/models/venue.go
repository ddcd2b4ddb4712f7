package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON Point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Valid reports whether the point is a well-formed GeoJSON Point with
// coordinates inside the WGS84 bounds (boundary values included).
func (p GeoPoint) Valid() bool {
	if p.Type != "Point" || len(p.Coordinates) != 2 {
		return false
	}
	lng, lat := p.Coordinates[0], p.Coordinates[1]
	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}

// DayHours holds opening and closing times for a single weekday.
type DayHours struct {
	Open  string `bson:"open,omitempty" json:"open,omitempty"`
	Close string `bson:"close,omitempty" json:"close,omitempty"`
}

// WeeklyHours maps each weekday to its opening hours. Days without an
// entry are considered closed (or covered by Is247).
type WeeklyHours struct {
	Monday    *DayHours `bson:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   *DayHours `bson:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday *DayHours `bson:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  *DayHours `bson:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    *DayHours `bson:"friday,omitempty" json:"friday,omitempty"`
	Saturday  *DayHours `bson:"saturday,omitempty" json:"saturday,omitempty"`
	Sunday    *DayHours `bson:"sunday,omitempty" json:"sunday,omitempty"`
}

// Venue is a point of interest shown on the map.
type Venue struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Category     []string           `bson:"category" json:"category"`
	Location     GeoPoint           `bson:"location" json:"location"`
	Importance   int                `bson:"importance" json:"importance"`
	Address      string             `bson:"address" json:"address"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Website      string             `bson:"website,omitempty" json:"website,omitempty"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	OpeningHours *WeeklyHours       `bson:"openingHours,omitempty" json:"openingHours,omitempty"`
	Is247        bool               `bson:"is24_7" json:"is24_7"`
	Photos       []string           `bson:"photos,omitempty" json:"photos,omitempty"`
	PlaceType    []string           `bson:"placeType,omitempty" json:"placeType,omitempty"`
	LastUpdated  time.Time          `bson:"lastUpdated" json:"lastUpdated"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VenueUpdate carries a partial venue update. Nil fields are left untouched.
type VenueUpdate struct {
	Name         *string
	Category     []string
	Location     *GeoPoint
	Importance   *int
	Address      *string
	Phone        *string
	Website      *string
	Rating       *float64
	OpeningHours *WeeklyHours
	Is247        *bool
	Photos       []string
	PlaceType    []string
}

// CategoryStat is one bucket of the per-category aggregation. A venue with
// several categories contributes to each of its category buckets.
type CategoryStat struct {
	Category      string  `bson:"_id" json:"category"`
	Count         int64   `bson:"count" json:"count"`
	AvgRating     float64 `bson:"avgRating" json:"avgRating"`
	AvgImportance float64 `bson:"avgImportance" json:"avgImportance"`
}
