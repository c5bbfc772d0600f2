package postgres

import (
	"time"
)

/*
 * 'Venue' is a bookable sports facility.
 */
type Venue struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"size:100;not null"`
	Sport        string    `gorm:"size:50;index:idx_venues_sport"`
	Address      string    `gorm:"size:255"`
	City         string    `gorm:"size:100;index:idx_venues_city"`
	State        string    `gorm:"size:100"`
	Capacity     int       `gorm:"default:0"`
	PricePerHour float64   `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationship with the venue's bookings
	Bookings []*VenueBooking `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
