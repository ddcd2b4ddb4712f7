package models

// Role represents an admin account role
type Role string

const (
	// RoleAdmin is the default role assigned on signup
	RoleAdmin Role = "admin"
	// RoleSuperAdmin has the same venue permissions as admin today;
	// kept separate so future operations can require it
	RoleSuperAdmin Role = "super-admin"
)

// ValidCategories is the closed list of venue categories.
// Writes with a category outside this list are rejected.
var ValidCategories = []string{
	"bars",
	"clubs",
	"restaurants",
	"hotels",
	"shops",
	"skiresorts",
	"shelters",
	"sports",
}

// IsValidCategory reports whether cat is one of ValidCategories.
func IsValidCategory(cat string) bool {
	for _, c := range ValidCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// Importance bounds for venues. Out-of-range values are clamped, not rejected.
const (
	MinImportance     = 1
	MaxImportance     = 10
	DefaultImportance = 5
)

// DefaultBannerOrder is assigned to banners created without an explicit order,
// pushing them to the end of the display sequence.
const DefaultBannerOrder = 999
