package repository

import (
	"context"

	"github.com/howietz/placeshare/internal/domain/entity"
)

// PlaceRepository defines the interface for place-related store operations.
type PlaceRepository interface {
	Create(ctx context.Context, p *entity.Place) error
	GetByID(ctx context.Context, id string) (*entity.Place, error)
	ListByCreator(ctx context.Context, userID string) ([]*entity.Place, error)
	Update(ctx context.Context, p *entity.Place) error
	Delete(ctx context.Context, id string) error
}
