package database

import (
	"github.com/mapspot/admin-api/model"
)

// ListUsers returns all users, newest id first.
func (s *GORMStore) ListUsers() ([]model.User, error) {
	users := []model.User{}
	if err := s.db.Order("id DESC").Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

// CreateUser persists a new user. A duplicate email surfaces as
// ErrDuplicate via the unique index.
func (s *GORMStore) CreateUser(user *model.User) error {
	return translateError(s.db.Create(user).Error)
}
