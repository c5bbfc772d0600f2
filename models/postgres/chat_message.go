package postgres

import (
	"time"
)

/*
 * 'ChatMessage' is the durable archive of an event chat message. Live
 * traffic goes through Redis; the sync manager flushes it here.
 */
type ChatMessage struct {
	ID       string    `gorm:"primaryKey;size:50;not null"`
	EventID  string    `gorm:"size:50;not null;index:idx_chat_messages_event"`
	Username string    `gorm:"size:50;not null"`
	Body     string    `gorm:"type:text;not null"`
	SentAt   time.Time `gorm:"not null"`

	// Relationship with the owning event
	Event Event `gorm:"foreignKey:EventID"`
}
