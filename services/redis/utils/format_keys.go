package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

import "fmt"

func FormatEventChatKey(eventID string) string {
	return fmt.Sprintf("event:%s:chat", eventID)
}

func FormatEventChatFlushedKey(eventID string) string {
	return fmt.Sprintf("event:%s:chat:flushed", eventID)
}

func FormatPresenceKey(username string) string {
	return fmt.Sprintf("presence:%s", username)
}

// EventChatKeyPattern matches every live chat history key, for SCAN.
const EventChatKeyPattern = "event:*:chat"
