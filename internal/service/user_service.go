package service

import (
	"errors"
	"strings"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// UserService manages accounts.
type UserService interface {
	// CreateUser registers a new account.  The email must be unused;
	// the password hash is produced at the boundary.
	CreateUser(email, displayName, role, passwordHash string) (model.User, error)
	// Deactivate permanently disables an account (admin only).  A
	// deactivated user fails every subsequent authorization check.
	Deactivate(actor *model.User, userID string) (model.User, error)
	FindByEmail(email string) (model.User, error)
	FindByID(id string) (model.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) CreateUser(email, displayName, role, passwordHash string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.User{}, invalid("email is required")
	}
	if !model.ValidRole(role) {
		return model.User{}, invalid("unknown role %q", role)
	}
	u, err := s.users.Create(model.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return model.User{}, invalid("email already exists")
		}
		return model.User{}, err
	}
	return u, nil
}

func (s *userService) Deactivate(actor *model.User, userID string) (model.User, error) {
	if err := RequireRole(actor, model.RoleAdmin); err != nil {
		return model.User{}, err
	}
	u, err := s.users.FindByID(userID)
	if err != nil {
		return model.User{}, lookupErr(err, "user")
	}
	u.IsActive = false
	return s.users.Save(u)
}

func (s *userService) FindByEmail(email string) (model.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return model.User{}, lookupErr(err, "user")
	}
	return u, nil
}

func (s *userService) FindByID(id string) (model.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return model.User{}, lookupErr(err, "user")
	}
	return u, nil
}
