package utils

import (
	"fmt"

	"SportHub/models/postgres"

	"gorm.io/gorm"
)

// CheckEventExists looks an event up by id.
func CheckEventExists(db *gorm.DB, eventID string) (*postgres.Event, error) {
	var event postgres.Event
	result := db.Where("id = ?", eventID).First(&event)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("event not found")
		}
		return nil, result.Error
	}

	return &event, nil
}

// IsParticipant reports whether a user has joined an event.
func IsParticipant(db *gorm.DB, eventID string, username string) (bool, error) {
	var count int64
	err := db.Model(&postgres.EventParticipant{}).
		Where("event_id = ? AND username = ?", eventID, username).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountParticipants returns how many users have joined an event.
func CountParticipants(db *gorm.DB, eventID string) (int64, error) {
	var count int64
	err := db.Model(&postgres.EventParticipant{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}
