package repository

import (
	"context"

	"github.com/howietz/placeshare/internal/domain/entity"
)

// UserRepository defines the interface for user-related store operations.
// AppendPlace and RemovePlace mutate only the owned-set column; they are meant
// to run inside the same atomic unit as the corresponding place write.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	AppendPlace(ctx context.Context, userID, placeID string) error
	RemovePlace(ctx context.Context, userID, placeID string) error
}
