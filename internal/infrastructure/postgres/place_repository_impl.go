package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/howietz/placeshare/internal/domain/entity"
	"github.com/howietz/placeshare/internal/domain/repository"
)

type PlaceRepository struct {
	db querier
}

func NewPlaceRepository(pool *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{db: pool}
}

func (r *PlaceRepository) Create(ctx context.Context, p *entity.Place) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO places (title, description, address, lat, lon, image, creator)
		VALUES ($1, $2, $3, $4, $5, $6, $7::uuid)
		RETURNING id::text, created_at, updated_at
	`, p.Title, p.Description, p.Address, p.Coordinates.Lat, p.Coordinates.Lon, p.Image, p.Creator)

	return translateErr(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*entity.Place, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id::text, title, description, address, lat, lon, image, creator::text, created_at, updated_at
		FROM places
		WHERE id = $1::uuid
	`, id)
	return scanPlace(row)
}

func (r *PlaceRepository) ListByCreator(ctx context.Context, userID string) ([]*entity.Place, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, title, description, address, lat, lon, image, creator::text, created_at, updated_at
		FROM places
		WHERE creator = $1::uuid
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var places []*entity.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return places, nil
}

// Update persists title and description only; creator and coordinates are
// immutable after creation.
func (r *PlaceRepository) Update(ctx context.Context, p *entity.Place) error {
	row := r.db.QueryRow(ctx, `
		UPDATE places
		SET title = $1, description = $2, updated_at = now()
		WHERE id = $3::uuid
		RETURNING updated_at
	`, p.Title, p.Description, p.ID)

	return translateErr(row.Scan(&p.UpdatedAt))
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `
		DELETE FROM places
		WHERE id = $1::uuid
	`, id)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPlace(row rowScanner) (*entity.Place, error) {
	p := &entity.Place{}
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Address,
		&p.Coordinates.Lat, &p.Coordinates.Lon, &p.Image, &p.Creator,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

var _ repository.PlaceRepository = (*PlaceRepository)(nil)
