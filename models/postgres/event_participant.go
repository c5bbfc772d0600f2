package postgres

import (
	"time"
)

/*
 * 'EventParticipant' represents a user's membership in an event. It
 * references Event and User through a composite primary key.
 */
type EventParticipant struct {
	// NOTE: composite primary key definition
	EventID  string    `gorm:"primaryKey;size:50;not null"`
	Username string    `gorm:"primaryKey;size:50;not null;index"`
	JoinedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationship with the event and the user
	Event Event `gorm:"foreignKey:EventID"`
	User  User  `gorm:"foreignKey:Username;references:Username"`
}
