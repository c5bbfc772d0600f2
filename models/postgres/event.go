package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'Event' defines the structure of a SportHub community event.
 * Location, rules and equipment arrive from the client as JSON strings
 * and are stored as jsonb columns verbatim.
 */
type Event struct {
	ID              string         `gorm:"primaryKey;size:50;not null"`
	Name            string         `gorm:"size:100;not null"`
	Category        string         `gorm:"size:50;index:idx_events_category"`
	Description     string         `gorm:"type:text"`
	Date            string         `gorm:"size:20"`
	Time            string         `gorm:"size:10"`
	Location        datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	MaxParticipants int            `gorm:"default:0"`
	RegistrationFee float64        `gorm:"default:0"`
	Difficulty      string         `gorm:"size:20"`
	EventType       string         `gorm:"size:20;default:'casual'"`
	Rules           datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Equipment       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	CreatorUsername string         `gorm:"size:50;index:idx_events_creator"`
	CreatedAt       time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time

	// Relationships
	Creator      User                `gorm:"foreignKey:CreatorUsername;references:Username"`
	Images       []*EventImage       `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Participants []*EventParticipant `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Ratings      []*EventRating      `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
