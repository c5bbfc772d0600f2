package redis

import "time"

// ChatMessage represents a message in an event chat room. JSON tags match
// the socket payloads exchanged with clients.
type ChatMessage struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
