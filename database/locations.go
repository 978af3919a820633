package database

import (
	"github.com/mapspot/admin-api/model"
)

// ListLocations returns all locations, newest id first.
func (s *GORMStore) ListLocations() ([]model.Location, error) {
	locations := []model.Location{}
	if err := s.db.Order("id DESC").Find(&locations).Error; err != nil {
		return nil, translateError(err)
	}
	return locations, nil
}

// GetLocation fetches a single location by id.
func (s *GORMStore) GetLocation(id uint) (*model.Location, error) {
	var location model.Location
	if err := s.db.First(&location, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &location, nil
}

// CreateLocation persists a new location and fills in the generated id
// and timestamps.
func (s *GORMStore) CreateLocation(loc *model.Location) error {
	return translateError(s.db.Create(loc).Error)
}

// UpdateLocation applies a partial update. Only columns present in fields
// are written; the modified record is returned.
func (s *GORMStore) UpdateLocation(id uint, fields map[string]interface{}) (*model.Location, error) {
	var location model.Location
	if err := s.db.First(&location, id).Error; err != nil {
		return nil, translateError(err)
	}

	if len(fields) > 0 {
		if err := s.db.Model(&location).Updates(fields).Error; err != nil {
			return nil, translateError(err)
		}
	}

	return &location, nil
}

// DeleteLocation removes a location by id. Returns ErrNotFound when the
// id does not exist, so a repeated delete never reports success twice.
func (s *GORMStore) DeleteLocation(id uint) error {
	result := s.db.Delete(&model.Location{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
