package geocode

import (
	"context"
	"errors"

	"github.com/howietz/placeshare/internal/domain/entity"
)

// ErrNoResults is returned when the lookup cannot resolve the address.
var ErrNoResults = errors.New("could not find location for the specified address")

// Resolver turns a postal address into coordinates. The place service treats
// it as a black box and surfaces its failures as invalid input.
type Resolver interface {
	Resolve(ctx context.Context, address string) (entity.Coordinates, error)
}

// Static resolves every address to the same fixed coordinates. It is the
// default resolver when no geocoding API key is configured.
type Static struct{}

func (Static) Resolve(ctx context.Context, address string) (entity.Coordinates, error) {
	return entity.Coordinates{
		Lat: 40.7484474,
		Lon: -73.9871516,
	}, nil
}

var _ Resolver = Static{}
