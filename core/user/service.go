package user

import (
	"context"
	"errors"

	"github.com/trezcool/elimu/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	// Repository is the user directory, whichever plane backs it.
	Repository interface {
		QueryAllUsers(ctx context.Context) ([]User, error)
		CreateUser(ctx context.Context, usr User) (User, error)
		DeleteUser(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

// Authenticate matches email and password verbatim against the directory.
// Both comparisons are exact: no trimming, no case folding.
func (svc *Service) Authenticate(ctx context.Context, email, pwd string) (Identity, error) {
	users, err := svc.repo.QueryAllUsers(ctx)
	if err != nil {
		return Identity{}, err
	}
	for _, usr := range users {
		if usr.Email == email && usr.CheckPassword(pwd) {
			return usr.Identity(), nil
		}
	}
	return Identity{}, ErrInvalidCredentials
}

// AuthenticateAdmin matches any admin whose password equals the given secret,
// ignoring email.
func (svc *Service) AuthenticateAdmin(ctx context.Context, secret string) (Identity, error) {
	users, err := svc.repo.QueryAllUsers(ctx)
	if err != nil {
		return Identity{}, err
	}
	for _, usr := range users {
		if usr.IsAdmin() && usr.CheckPassword(secret) {
			return usr.Identity(), nil
		}
	}
	return Identity{}, ErrInvalidCredentials
}

// Create adds a user to the directory after checking email uniqueness.
func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	users, err := svc.repo.QueryAllUsers(ctx)
	if err != nil {
		return User{}, err
	}
	for _, usr := range users {
		if usr.Email == nu.Email {
			return User{}, core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
		}
	}
	return svc.repo.CreateUser(ctx, User{
		Name:     nu.Name,
		Email:    nu.Email,
		Password: nu.Password,
		Role:     nu.Role,
	})
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteUser(ctx, id)
}
