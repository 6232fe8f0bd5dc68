package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/howietz/placeshare/internal/domain/entity"
	"github.com/howietz/placeshare/internal/domain/repository"
)

type UserRepository struct {
	db querier
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at, updated_at
	`, u.Name, u.Email, u.Password, u.Image)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return translateErr(err)
	}
	if u.PlaceIDs == nil {
		u.PlaceIDs = []string{}
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id::text, name, email, password, image, place_ids::text[], created_at, updated_at
		FROM users
		WHERE id = $1::uuid
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id::text, name, email, password, image, place_ids::text[], created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, name, email, password, image, place_ids::text[], created_at, updated_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return users, nil
}

// AppendPlace adds a place id to the user's owned set. The single UPDATE takes
// a row lock, so concurrent set mutations on the same user serialize instead
// of losing updates.
func (r *UserRepository) AppendPlace(ctx context.Context, userID, placeID string) error {
	res, err := r.db.Exec(ctx, `
		UPDATE users
		SET place_ids = array_append(place_ids, $2::uuid), updated_at = now()
		WHERE id = $1::uuid
	`, userID, placeID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) RemovePlace(ctx context.Context, userID, placeID string) error {
	res, err := r.db.Exec(ctx, `
		UPDATE users
		SET place_ids = array_remove(place_ids, $2::uuid), updated_at = now()
		WHERE id = $1::uuid
	`, userID, placeID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Image,
		&u.PlaceIDs, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, translateErr(err)
	}
	if u.PlaceIDs == nil {
		u.PlaceIDs = []string{}
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
