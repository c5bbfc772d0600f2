package postgres

import (
	"time"
)

/*
 * 'EventRating' is a participant's review of a finished event.
 * One rating per (event, user) pair.
 */
type EventRating struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	EventID   string    `gorm:"size:50;not null;uniqueIndex:idx_event_ratings_unique"`
	Username  string    `gorm:"size:50;not null;uniqueIndex:idx_event_ratings_unique"`
	Score     int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Event Event `gorm:"foreignKey:EventID"`
	User  User  `gorm:"foreignKey:Username;references:Username"`
}
