package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminAccount is a backoffice account. The password hash is stored but
// never serialized to clients.
type AdminAccount struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username          string             `bson:"username" json:"username"`
	PasswordHash      string             `bson:"passwordHash" json:"-"`
	Role              Role               `bson:"role" json:"role"`
	LastLoginAt       *time.Time         `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	PasswordChangedAt *time.Time         `bson:"passwordChangedAt,omitempty" json:"-"`
	Active            bool               `bson:"active" json:"-"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ChangedPasswordAfter reports whether the password was rotated after the
// given token issue time. Tokens issued before a rotation must be rejected.
func (a *AdminAccount) ChangedPasswordAfter(issuedAt time.Time) bool {
	if a.PasswordChangedAt == nil {
		return false
	}
	return a.PasswordChangedAt.After(issuedAt)
}
