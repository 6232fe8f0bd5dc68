package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// PlaceIDs mirrors the creator field on each owned Place; the two sides are
// kept consistent by the place service's transactional operations.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Image     string    `json:"image"`
	PlaceIDs  []string  `json:"places"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnsPlace reports whether the given place id is in the user's owned set.
// Order within the set carries no meaning.
func (u *User) OwnsPlace(placeID string) bool {
	for _, id := range u.PlaceIDs {
		if id == placeID {
			return true
		}
	}
	return false
}
