package services

import (
	"github.com/mapspot/admin-api/database"
	"github.com/mapspot/admin-api/model"
)

// UserService delegates user operations to the repository.
type UserService struct {
	store database.Storage
}

// NewUserService creates a new user service
func NewUserService(store database.Storage) *UserService {
	return &UserService{store: store}
}

// List returns all users, newest id first.
func (s *UserService) List() ([]model.User, error) {
	return s.store.ListUsers()
}

// Create persists a new user. Callers see database.ErrDuplicate when the
// email is already taken.
func (s *UserService) Create(user *model.User) error {
	return s.store.CreateUser(user)
}
