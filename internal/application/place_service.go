package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/howietz/placeshare/internal/domain/entity"
	repo "github.com/howietz/placeshare/internal/domain/repository"
	"github.com/howietz/placeshare/internal/infrastructure/geocode"
)

var ErrPlaceNotFound = errors.New("place not found")

// defaultPlaceImage is attached to every new place; there is no upload path.
const defaultPlaceImage = "https://www.google.com/maps/place/%E6%82%89%E5%B0%BC%E6%AD%8C%E5%89%A7%E9%99%A2/@-33.8567844,151.2152967,3a,75y,90t/data=!3m8!1e2!3m6!1sAF1QipM0MYy_ngQbRS4Cyqe14MB3wsEx-2L76xEpmOsQ!2e10!3e12!6shttps:%2F%2Flh5.googleusercontent.com%2Fp%2FAF1QipM0MYy_ngQbRS4Cyqe14MB3wsEx-2L76xEpmOsQ%3Dw129-h86-k-no!7i2560!8i1700!4m5!3m4!1s0x0:0x3133f8d75a1ac251!8m2!3d-33.8567844!4d151.2152967#"

// PlaceService coordinates writes that span the places row and the creator's
// owned set. A place and its creator live in separate rows, so create and
// delete each run inside one atomic unit; a failure on either write rolls
// back both, leaving no orphan place and no dangling id in the set.
type PlaceService struct {
	Places repo.PlaceRepository
	Atomic repo.Atomic
	Geo    geocode.Resolver
	Logger *logrus.Logger
}

func NewPlaceService(places repo.PlaceRepository, atomic repo.Atomic, geo geocode.Resolver, logger *logrus.Logger) *PlaceService {
	return &PlaceService{Places: places, Atomic: atomic, Geo: geo, Logger: logger}
}

type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	Creator     string
}

// Create resolves the address, then inserts the place and appends its id to
// the creator's owned set in one transaction. The creator is resolved inside
// the transaction so a user deleted mid-flight cannot end up referenced by a
// committed place.
func (s *PlaceService) Create(ctx context.Context, in CreatePlaceInput) (*entity.Place, error) {
	coords, err := s.Geo.Resolve(ctx, in.Address)
	if err != nil {
		return nil, err
	}

	p := &entity.Place{
		Title:       in.Title,
		Description: in.Description,
		Address:     in.Address,
		Coordinates: coords,
		Image:       defaultPlaceImage,
		Creator:     in.Creator,
	}

	err = s.Atomic.Transact(ctx, func(st repo.Stores) error {
		if _, err := st.Users.GetByID(ctx, in.Creator); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := st.Places.Create(ctx, p); err != nil {
			return err
		}
		return st.Users.AppendPlace(ctx, in.Creator, p.ID)
	})
	if err != nil {
		if s.Logger != nil && !errors.Is(err, ErrUserNotFound) {
			s.Logger.WithError(err).WithField("creator", in.Creator).Error("create place failed")
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the place row and unlinks it from its creator's owned set in
// one transaction.
func (s *PlaceService) Delete(ctx context.Context, placeID string) error {
	err := s.Atomic.Transact(ctx, func(st repo.Stores) error {
		p, err := st.Places.GetByID(ctx, placeID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPlaceNotFound
			}
			return err
		}
		if err := st.Places.Delete(ctx, p.ID); err != nil {
			return err
		}
		return st.Users.RemovePlace(ctx, p.Creator, p.ID)
	})
	if err != nil && s.Logger != nil && !errors.Is(err, ErrPlaceNotFound) {
		s.Logger.WithError(err).WithField("place_id", placeID).Error("delete place failed")
	}
	return err
}

// Update touches a single row, so no atomic unit is needed.
func (s *PlaceService) Update(ctx context.Context, placeID, title, description string) (*entity.Place, error) {
	p, err := s.Places.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	p.Title = title
	p.Description = description
	if err := s.Places.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PlaceService) Get(ctx context.Context, placeID string) (*entity.Place, error) {
	p, err := s.Places.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PlaceService) ListByCreator(ctx context.Context, userID string) ([]*entity.Place, error) {
	return s.Places.ListByCreator(ctx, userID)
}
