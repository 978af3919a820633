package model

import (
	"time"
)

// AvailabilityStatus is the display state of an advertising location,
// derived at read time and never persisted.
type AvailabilityStatus string

const (
	// StatusInactive means an operator disabled the location. Takes
	// precedence over everything else.
	StatusInactive AvailabilityStatus = "inactive"
	// StatusAvailable means the booking window has lapsed and the slot
	// is free for reuse.
	StatusAvailable AvailabilityStatus = "available"
	// StatusTaken is the default: active with an unexpired or open-ended
	// booking window.
	StatusTaken AvailabilityStatus = "taken"
)

// AvailabilityOf derives the display status from the active flag and the
// end of the booking window. Precedence: inactive > available > taken.
// Expiry is only consulted when the location is active, and "expired"
// means strictly before now.
func AvailabilityOf(isActive *bool, endDate *time.Time, now time.Time) AvailabilityStatus {
	if isActive != nil && !*isActive {
		return StatusInactive
	}
	if endDate != nil && endDate.Before(now) {
		return StatusAvailable
	}
	return StatusTaken
}

// Location represents an advertising screen location shown on the map.
// Image payloads are stored inline as raw base64 text with their MIME type.
type Location struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Name         string     `gorm:"not null" json:"name"`
	Lat          float64    `gorm:"not null" json:"lat"`
	Lng          float64    `gorm:"not null" json:"lng"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	LocationName string     `gorm:"type:varchar(255)" json:"locationName,omitempty"`
	ScreenWidth  *int       `json:"screenWidth,omitempty"`
	ScreenHeight *int       `json:"screenHeight,omitempty"`
	ImageBase64  string     `gorm:"type:text" json:"imageBase64,omitempty"`
	ImageMime    string     `gorm:"type:varchar(20)" json:"imageMime,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsActive     *bool      `gorm:"default:true" json:"isActive,omitempty"`

	// Derived on every read, not a column.
	Status AvailabilityStatus `gorm:"-" json:"status,omitempty"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}

// DeriveStatus fills the transient Status field relative to now.
func (l *Location) DeriveStatus(now time.Time) {
	l.Status = AvailabilityOf(l.IsActive, l.EndDate, now)
}
