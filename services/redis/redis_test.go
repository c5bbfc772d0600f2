package redis

import (
	redis_models "SportHub/models/redis"
	"fmt"
	"testing"
	"time"
)

func TestRedisOperations(t *testing.T) {
	rc, err := InitRedis("localhost:6379", 0)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer CloseRedis(rc)

	// Helper function to clean Redis data
	cleanupRedis := func() {
		keys := []string{
			"event:test_event_123:chat",
			"event:test_event_123:chat:flushed",
			"presence:test_user",
		}
		if err := rc.CleanupKeys(keys); err != nil {
			t.Fatalf("Failed to cleanup Redis keys: %v", err)
		}
	}

	t.Run("Ping", func(t *testing.T) {
		if err := rc.Ping(); err != nil {
			t.Errorf("Failed to ping Redis: %v", err)
		}
	})

	t.Run("Chat History Operations", func(t *testing.T) {
		cleanupRedis()

		first := &redis_models.ChatMessage{
			ID:        "m1",
			EventID:   "test_event_123",
			UserID:    "u1",
			Username:  "test_user",
			Text:      "anyone up for a run?",
			Timestamp: time.Now().UTC().Truncate(time.Second),
		}
		second := &redis_models.ChatMessage{
			ID:        "m2",
			EventID:   "test_event_123",
			UserID:    "u2",
			Username:  "other_user",
			Text:      "count me in",
			Timestamp: time.Now().UTC().Truncate(time.Second),
		}

		if err := rc.AppendEventMessage(first); err != nil {
			t.Errorf("Failed to append message: %v", err)
		}
		if err := rc.AppendEventMessage(second); err != nil {
			t.Errorf("Failed to append message: %v", err)
		}

		messages, err := rc.GetEventMessages("test_event_123")
		if err != nil {
			t.Errorf("Failed to get messages: %v", err)
		}
		fmt.Printf("Retrieved Messages from Redis: %+v\n", messages)

		if len(messages) != 2 {
			t.Fatalf("Expected 2 messages, got %d", len(messages))
		}
		// Arrival order is the only ordering guarantee
		if messages[0].ID != "m1" || messages[1].ID != "m2" {
			t.Errorf("Message order mismatch: %s, %s", messages[0].ID, messages[1].ID)
		}
		if messages[0].Text != first.Text {
			t.Errorf("Message text mismatch. Expected %q, got %q", first.Text, messages[0].Text)
		}

		length, err := rc.GetEventChatLength("test_event_123")
		if err != nil {
			t.Errorf("Failed to get chat length: %v", err)
		}
		if length != 2 {
			t.Errorf("Expected chat length 2, got %d", length)
		}
	})

	t.Run("Flushed Offset Operations", func(t *testing.T) {
		cleanupRedis()

		// Missing marker reads as zero
		offset, err := rc.GetFlushedOffset("test_event_123")
		if err != nil {
			t.Errorf("Failed to get flushed offset: %v", err)
		}
		if offset != 0 {
			t.Errorf("Expected offset 0 for fresh room, got %d", offset)
		}

		if err := rc.SetFlushedOffset("test_event_123", 7); err != nil {
			t.Errorf("Failed to set flushed offset: %v", err)
		}

		offset, err = rc.GetFlushedOffset("test_event_123")
		if err != nil {
			t.Errorf("Failed to get flushed offset: %v", err)
		}
		if offset != 7 {
			t.Errorf("Expected offset 7, got %d", offset)
		}
	})

	t.Run("Partial History Reads", func(t *testing.T) {
		cleanupRedis()

		for i := 0; i < 3; i++ {
			msg := &redis_models.ChatMessage{
				ID:      fmt.Sprintf("m%d", i),
				EventID: "test_event_123",
				UserID:  "u1",
				Text:    fmt.Sprintf("message %d", i),
			}
			if err := rc.AppendEventMessage(msg); err != nil {
				t.Fatalf("Failed to append message: %v", err)
			}
		}

		messages, err := rc.GetEventMessagesFrom("test_event_123", 2)
		if err != nil {
			t.Errorf("Failed to get messages from offset: %v", err)
		}
		if len(messages) != 1 || messages[0].ID != "m2" {
			t.Errorf("Expected only m2 from offset 2, got %+v", messages)
		}
	})

	t.Run("Presence Operations", func(t *testing.T) {
		cleanupRedis()

		presence := &redis_models.ParticipantPresence{
			Username: "test_user",
			EventID:  "test_event_123",
			Status:   redis_models.StatusInChat,
			LastPing: time.Now().Unix(),
			SocketID: "sock-1",
		}

		if err := rc.SavePresence(presence); err != nil {
			t.Errorf("Failed to save presence: %v", err)
		}

		retrieved, err := rc.GetPresence("test_user")
		if err != nil {
			t.Errorf("Failed to get presence: %v", err)
		}
		fmt.Printf("Retrieved Presence from Redis: %+v\n", retrieved)

		if retrieved.Username != presence.Username ||
			retrieved.EventID != presence.EventID ||
			retrieved.Status != presence.Status {
			t.Errorf("Presence data mismatch")
		}

		if err := rc.DeletePresence("test_user"); err != nil {
			t.Errorf("Failed to delete presence: %v", err)
		}
		if _, err := rc.GetPresence("test_user"); err == nil {
			t.Errorf("Expected error reading deleted presence")
		}
	})

	t.Run("Delete Chat Room", func(t *testing.T) {
		cleanupRedis()

		msg := &redis_models.ChatMessage{ID: "m1", EventID: "test_event_123", UserID: "u1", Text: "bye"}
		if err := rc.AppendEventMessage(msg); err != nil {
			t.Fatalf("Failed to append message: %v", err)
		}
		if err := rc.SetFlushedOffset("test_event_123", 1); err != nil {
			t.Fatalf("Failed to set flushed offset: %v", err)
		}

		if err := rc.DeleteEventChat("test_event_123"); err != nil {
			t.Errorf("Failed to delete chat: %v", err)
		}

		length, err := rc.GetEventChatLength("test_event_123")
		if err != nil {
			t.Errorf("Failed to get chat length: %v", err)
		}
		if length != 0 {
			t.Errorf("Expected empty chat after delete, got %d entries", length)
		}
		offset, err := rc.GetFlushedOffset("test_event_123")
		if err != nil {
			t.Errorf("Failed to get flushed offset: %v", err)
		}
		if offset != 0 {
			t.Errorf("Expected flush marker gone after delete, got %d", offset)
		}
	})
}
