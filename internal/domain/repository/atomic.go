package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by any repository lookup whose target does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write collides with a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// Stores bundles the repositories bound to one atomic unit.
type Stores struct {
	Users  UserRepository
	Places PlaceRepository
}

// Atomic groups multi-entity writes into an all-or-nothing unit. The
// repositories passed to fn see uncommitted writes of the same unit; if fn
// returns an error the whole unit is rolled back and none of its writes
// become visible.
type Atomic interface {
	Transact(ctx context.Context, fn func(s Stores) error) error
}
