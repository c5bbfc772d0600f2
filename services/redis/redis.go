package redis

import (
	redis_models "SportHub/models/redis"
	redis_utils "SportHub/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Chat history keys expire after a day without traffic; every append
// refreshes the TTL.
const chatHistoryTTL = 24 * time.Hour

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// Ping verifies the Redis connection is alive.
func (rc *RedisClient) Ping() error {
	return rc.client.Ping(rc.ctx).Err()
}

// AppendEventMessage pushes a chat message onto the end of an event's
// history list. List order is arrival order, which is the only ordering
// guarantee the chat makes.
// Key format: "event:{id}:chat"
func (rc *RedisClient) AppendEventMessage(msg *redis_models.ChatMessage) error {
	key := redis_utils.FormatEventChatKey(msg.EventID)
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling chat message: %v", err)
	}

	pipe := rc.client.Pipeline()
	pipe.RPush(rc.ctx, key, data)
	pipe.Expire(rc.ctx, key, chatHistoryTTL)
	_, err = pipe.Exec(rc.ctx)
	if err != nil {
		return fmt.Errorf("error appending chat message: %v", err)
	}
	return nil
}

// GetEventMessages returns the full history of an event chat room in
// arrival order. A missing key is an empty history, not an error.
// Key format: "event:{id}:chat"
func (rc *RedisClient) GetEventMessages(eventID string) ([]redis_models.ChatMessage, error) {
	return rc.GetEventMessagesFrom(eventID, 0)
}

// GetEventMessagesFrom returns history entries starting at the given list
// offset. Used by the sync manager to flush only what is new.
func (rc *RedisClient) GetEventMessagesFrom(eventID string, offset int64) ([]redis_models.ChatMessage, error) {
	key := redis_utils.FormatEventChatKey(eventID)
	entries, err := rc.client.LRange(rc.ctx, key, offset, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting chat history: %v", err)
	}

	messages := make([]redis_models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var msg redis_models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("error unmarshaling chat message: %v", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// GetEventChatLength returns the number of messages currently held for an
// event chat room.
func (rc *RedisClient) GetEventChatLength(eventID string) (int64, error) {
	key := redis_utils.FormatEventChatKey(eventID)
	n, err := rc.client.LLen(rc.ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("error getting chat length: %v", err)
	}
	return n, nil
}

// GetFlushedOffset returns how many messages of an event's history have
// already been archived to PostgreSQL.
func (rc *RedisClient) GetFlushedOffset(eventID string) (int64, error) {
	key := redis_utils.FormatEventChatFlushedKey(eventID)
	n, err := rc.client.Get(rc.ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("error getting flushed offset: %v", err)
	}
	return n, nil
}

// SetFlushedOffset records the archive high-water mark for an event chat.
func (rc *RedisClient) SetFlushedOffset(eventID string, offset int64) error {
	key := redis_utils.FormatEventChatFlushedKey(eventID)
	if err := rc.client.Set(rc.ctx, key, offset, chatHistoryTTL).Err(); err != nil {
		return fmt.Errorf("error setting flushed offset: %v", err)
	}
	return nil
}

// ListActiveChatRooms scans for event ids that currently hold chat history.
func (rc *RedisClient) ListActiveChatRooms() ([]string, error) {
	var eventIDs []string
	var cursor uint64
	for {
		keys, next, err := rc.client.Scan(rc.ctx, cursor, redis_utils.EventChatKeyPattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("error scanning chat keys: %v", err)
		}
		for _, key := range keys {
			// event:{id}:chat
			trimmed := strings.TrimPrefix(key, "event:")
			trimmed = strings.TrimSuffix(trimmed, ":chat")
			if trimmed != "" && !strings.Contains(trimmed, ":") {
				eventIDs = append(eventIDs, trimmed)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return eventIDs, nil
}

// DeleteEventChat removes an event's chat history and its flush marker.
// Key format: "event:{id}:chat"
func (rc *RedisClient) DeleteEventChat(eventID string) error {
	pipe := rc.client.Pipeline()
	pipe.Del(rc.ctx, redis_utils.FormatEventChatKey(eventID))
	pipe.Del(rc.ctx, redis_utils.FormatEventChatFlushedKey(eventID))
	_, err := pipe.Exec(rc.ctx)
	if err != nil {
		return fmt.Errorf("error deleting chat history: %v", err)
	}
	return nil
}

// SavePresence stores a participant's presence info.
// Key format: "presence:{username}"
// TTL: 24 hours
func (rc *RedisClient) SavePresence(p *redis_models.ParticipantPresence) error {
	key := redis_utils.FormatPresenceKey(p.Username)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("error marshaling presence data: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, chatHistoryTTL).Err()
}

// GetPresence retrieves a participant's presence info.
func (rc *RedisClient) GetPresence(username string) (*redis_models.ParticipantPresence, error) {
	key := redis_utils.FormatPresenceKey(username)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting presence data: %v", err)
	}

	var p redis_models.ParticipantPresence
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("error unmarshaling presence data: %v", err)
	}
	return &p, nil
}

// DeletePresence removes a participant's presence info.
func (rc *RedisClient) DeletePresence(username string) error {
	key := redis_utils.FormatPresenceKey(username)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting presence data: %v", err)
	}
	return nil
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
