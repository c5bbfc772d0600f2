package postgres

import (
	"time"
)

/*
 * 'User' contains the blueprint definition of a User: login identity plus
 * the public profile shown next to events, ratings and chat messages.
 */
type User struct {
	Email        string    `gorm:"primaryKey;size:100;not null"`
	Username     string    `gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	FullName     string    `gorm:"size:100"`
	AvatarURL    string    `gorm:"size:255"`
	MemberSince  time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Events         []*Event            `gorm:"foreignKey:CreatorUsername;references:Username"`
	Participations []*EventParticipant `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}
