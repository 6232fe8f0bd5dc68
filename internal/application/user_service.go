package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/howietz/placeshare/internal/domain/entity"
	repo "github.com/howietz/placeshare/internal/domain/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already exists")
)

// defaultUserImage is the avatar assigned to every new account.
const defaultUserImage = "https://cdn-icons-png.flaticon.com/512/147/147140.png"

type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user. Emails are normalized to lowercase before the
// uniqueness check so the same address cannot sign up twice with different
// casing; a concurrent duplicate is caught by the unique index and reported
// the same way.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email := NormalizeEmail(in.Email)

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u := &entity.User{
		Name:     in.Name,
		Email:    email,
		Password: in.Password,
		Image:    defaultUserImage,
		PlaceIDs: []string{},
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrEmailTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		}
		return nil, err
	}
	return u, nil
}

// Login validates email/password. Credentials are opaque strings compared as
// stored; an unknown email and a wrong password produce the same error so the
// response does not reveal which one was off.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// List returns all users; passwords never leave the entity's JSON shape.
func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.List(ctx)
}

// NormalizeEmail lowercases and trims an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
