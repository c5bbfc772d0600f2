package redis

type ParticipantStatus string

const (
	StatusOnline  ParticipantStatus = "online"
	StatusOffline ParticipantStatus = "offline"
	StatusInChat  ParticipantStatus = "in_chat"
)

type ParticipantPresence struct {
	Username string            `json:"username"`
	EventID  string            `json:"event_id"`
	Status   ParticipantStatus `json:"status"`
	LastPing int64             `json:"last_ping"` // Unix timestamp
	SocketID string            `json:"socket_id"` // For direct messaging
}
