package postgres

import (
	"time"
)

/*
 * 'VenueBooking' reserves a venue time slot for a user. Status is one of
 * "pending", "confirmed" or "cancelled".
 */
type VenueBooking struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	VenueID   uint      `gorm:"not null;index:idx_venue_bookings_venue"`
	Username  string    `gorm:"size:50;not null;index:idx_venue_bookings_user"`
	Date      string    `gorm:"size:20;not null"`
	StartTime string    `gorm:"size:10;not null"`
	EndTime   string    `gorm:"size:10;not null"`
	Status    string    `gorm:"size:20;default:'pending'"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID"`
	User  User  `gorm:"foreignKey:Username;references:Username"`
}
