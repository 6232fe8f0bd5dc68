package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/howietz/placeshare/internal/domain/entity"
	"github.com/howietz/placeshare/internal/domain/repository"
)

// Store is an in-memory entity store used by tests. Transact snapshots both
// collections and restores them when the unit fails, matching the
// all-or-nothing visibility of the Postgres transaction.
type Store struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	places map[string]*entity.Place

	// Failure injection for exercising mid-unit aborts.
	FailCreatePlace error
	FailDeletePlace error
	FailAppendPlace error
	FailRemovePlace error
}

func NewStore() *Store {
	return &Store{
		users:  map[string]*entity.User{},
		places: map[string]*entity.Place{},
	}
}

func (s *Store) Users() repository.UserRepository   { return &userRepo{s: s} }
func (s *Store) Places() repository.PlaceRepository { return &placeRepo{s: s} }

func (s *Store) Transact(ctx context.Context, fn func(st repository.Stores) error) error {
	s.mu.Lock()
	snapUsers := cloneUserMap(s.users)
	snapPlaces := clonePlaceMap(s.places)
	s.mu.Unlock()

	if err := fn(repository.Stores{Users: s.Users(), Places: s.Places()}); err != nil {
		s.mu.Lock()
		s.users, s.places = snapUsers, snapPlaces
		s.mu.Unlock()
		return err
	}
	return nil
}

var _ repository.Atomic = (*Store)(nil)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	if u.PlaceIDs == nil {
		u.PlaceIDs = []string{}
	}
	r.s.users[u.ID] = cloneUser(u)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) List(ctx context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (r *userRepo) AppendPlace(ctx context.Context, userID, placeID string) error {
	if r.s.FailAppendPlace != nil {
		return r.s.FailAppendPlace
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.PlaceIDs = append(u.PlaceIDs, placeID)
	u.UpdatedAt = time.Now()
	return nil
}

func (r *userRepo) RemovePlace(ctx context.Context, userID, placeID string) error {
	if r.s.FailRemovePlace != nil {
		return r.s.FailRemovePlace
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	kept := u.PlaceIDs[:0]
	for _, id := range u.PlaceIDs {
		if id != placeID {
			kept = append(kept, id)
		}
	}
	u.PlaceIDs = kept
	u.UpdatedAt = time.Now()
	return nil
}

type placeRepo struct {
	s *Store
}

func (r *placeRepo) Create(ctx context.Context, p *entity.Place) error {
	if r.s.FailCreatePlace != nil {
		return r.s.FailCreatePlace
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[p.Creator]; !ok {
		return repository.ErrNotFound
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.s.places[p.ID] = clonePlace(p)
	return nil
}

func (r *placeRepo) GetByID(ctx context.Context, id string) (*entity.Place, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.places[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clonePlace(p), nil
}

func (r *placeRepo) ListByCreator(ctx context.Context, userID string) ([]*entity.Place, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var places []*entity.Place
	for _, p := range r.s.places {
		if p.Creator == userID {
			places = append(places, clonePlace(p))
		}
	}
	sort.Slice(places, func(i, j int) bool { return places[i].CreatedAt.Before(places[j].CreatedAt) })
	return places, nil
}

func (r *placeRepo) Update(ctx context.Context, p *entity.Place) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.places[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Title = p.Title
	existing.Description = p.Description
	existing.UpdatedAt = time.Now()
	p.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *placeRepo) Delete(ctx context.Context, id string) error {
	if r.s.FailDeletePlace != nil {
		return r.s.FailDeletePlace
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.places[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.places, id)
	return nil
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.PlaceIDs = append([]string{}, u.PlaceIDs...)
	return &c
}

func clonePlace(p *entity.Place) *entity.Place {
	c := *p
	return &c
}

func cloneUserMap(m map[string]*entity.User) map[string]*entity.User {
	out := make(map[string]*entity.User, len(m))
	for k, v := range m {
		out[k] = cloneUser(v)
	}
	return out
}

func clonePlaceMap(m map[string]*entity.Place) map[string]*entity.Place {
	out := make(map[string]*entity.Place, len(m))
	for k, v := range m {
		out[k] = clonePlace(v)
	}
	return out
}
