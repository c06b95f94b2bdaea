package service

import (
	"context"
	"errors"
	"fmt"

	"coursecatalog/internal/auth"
	"coursecatalog/internal/model"
	"coursecatalog/internal/repository"
)

const (
	msgUsernameTaken = "A user with that username already exists."
	msgEmailTaken    = "A user with that email already exists."
	// bcrypt limit, counted in bytes rather than characters.
	msgPasswordTooLong = "Ensure this field has no more than %d bytes."
)

// RegisterInput is a validated registration request.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	// UpdateProfile applies a mutation to the requester's own record; only
	// first and last name are persisted.
	UpdateProfile(ctx context.Context, actor *model.Identity, apply func(*model.User) error) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher auth.PasswordHasher) UserService {
	return &userService{userRepo: userRepo, hasher: hasher}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	taken, err := s.userRepo.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewFieldError("username", msgUsernameTaken)
	}
	taken, err = s.userRepo.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewFieldError("email", msgEmailTaken)
	}

	hash, err := s.hasher.Hash(in.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, NewFieldError("password", fmt.Sprintf(msgPasswordTooLong, auth.MaxPasswordBytes))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		// A concurrent registration can pass the checks above and still hit the unique index.
		if errors.Is(err, repository.ErrDuplicate) {
			switch repository.ConstraintName(err) {
			case repository.UsersUsernameKey:
				return nil, NewFieldError("username", msgUsernameTaken)
			case repository.UsersEmailKey:
				return nil, NewFieldError("email", msgEmailTaken)
			}
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor *model.Identity, apply func(*model.User) error) (*model.User, error) {
	if !IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}
	u, err := s.Get(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	draft := *u
	if err := apply(&draft); err != nil {
		return nil, err
	}
	u.FirstName, u.LastName = draft.FirstName, draft.LastName
	if err := s.userRepo.UpdateUserNames(ctx, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
