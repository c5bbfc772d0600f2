package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'EventImage' is one persisted event photo. The uuid primary key is the
 * stable identifier the edit flow uses to mark an image for deletion;
 * positions keep the gallery order client-side.
 */
type EventImage struct {
	ID       string `gorm:"primaryKey;size:50;not null"`
	EventID  string `gorm:"size:50;not null;index:idx_event_images_event"`
	Filename string `gorm:"size:255;not null"`
	Position int    `gorm:"default:0"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationship with the owning event
	Event Event `gorm:"foreignKey:EventID"`
}

func (img *EventImage) BeforeCreate(tx *gorm.DB) (err error) {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	return nil
}
