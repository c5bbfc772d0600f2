package sync

import (
	"SportHub/services/redis"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// SyncManager archives live Redis chat history into PostgreSQL. Redis keeps
// serving the replayable history; the flushed-offset marker makes each
// flush pick up only what is new, so re-running never duplicates rows.
type SyncManager struct {
	redisClient *redis.RedisClient
	db          *sql.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(redisClient *redis.RedisClient, db *sql.DB) *SyncManager {
	return &SyncManager{
		redisClient: redisClient,
		db:          db,
	}
}

// SyncEventChat flushes the unarchived tail of one event's chat history.
func (sm *SyncManager) SyncEventChat(eventID string) error {
	offset, err := sm.redisClient.GetFlushedOffset(eventID)
	if err != nil {
		return fmt.Errorf("error getting flushed offset: %v", err)
	}

	messages, err := sm.redisClient.GetEventMessagesFrom(eventID, offset)
	if err != nil {
		return fmt.Errorf("error getting chat history from Redis: %v", err)
	}
	if len(messages) == 0 {
		return nil
	}

	// Start transaction
	tx, err := sm.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO chat_messages (id, event_id, username, body, sent_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	for _, msg := range messages {
		if _, err := tx.Exec(insertQuery,
			msg.ID, msg.EventID, msg.Username, msg.Text, msg.Timestamp); err != nil {
			return fmt.Errorf("error archiving chat message: %v", err)
		}
	}

	// Confirm transaction
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %v", err)
	}

	if err := sm.redisClient.SetFlushedOffset(eventID, offset+int64(len(messages))); err != nil {
		return fmt.Errorf("error advancing flushed offset: %v", err)
	}
	return nil
}

// SyncAllActiveChats flushes every event chat that currently holds history.
func (sm *SyncManager) SyncAllActiveChats() error {
	eventIDs, err := sm.redisClient.ListActiveChatRooms()
	if err != nil {
		return fmt.Errorf("error listing active chat rooms: %v", err)
	}

	for _, eventID := range eventIDs {
		if err := sm.SyncEventChat(eventID); err != nil {
			log.Printf("[SYNC-ERROR] Error flushing chat of event %s: %v", eventID, err)
		}
	}
	return nil
}

// RunPeriodic flushes on a fixed interval until stop is closed.
func (sm *SyncManager) RunPeriodic(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := sm.SyncAllActiveChats(); err != nil {
				log.Printf("[SYNC-ERROR] %v", err)
			}
		case <-stop:
			// one final flush on the way out
			if err := sm.SyncAllActiveChats(); err != nil {
				log.Printf("[SYNC-ERROR] final flush: %v", err)
			}
			return
		}
	}
}
