package chat

import (
	redis_models "SportHub/models/redis"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyMessage rejects whitespace-only text before any transport work.
var ErrEmptyMessage = errors.New("message text is empty")

// ErrNotInRoom rejects a send for a room the session never joined.
var ErrNotInRoom = errors.New("not joined to this event chat")

// State is the session's position in the Idle -> Joined lifecycle.
type State int

const (
	StateIdle State = iota
	StateJoined
)

// Session tracks one connection's chat room membership and its local view
// of the room. A session is joined to at most one room at a time: joining
// a second room implicitly requires leaving the first, and the caller gets
// the room to leave back from Join. Leave exactly undoes one join and is
// safe to call when no join ever happened.
type Session struct {
	mu       sync.Mutex
	state    State
	eventID  string
	timeline Timeline
}

func NewSession() *Session {
	return &Session{}
}

// Join moves the session into the given room. It returns the previously
// joined room ("" if none) so the transport can unsubscribe from it first;
// never two room subscriptions at once. Re-joining the current room is a
// no-op that reports no previous room, so mounting the chat view twice is
// safe.
func (s *Session) Join(eventID string) (previous string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateJoined {
		if s.eventID == eventID {
			return ""
		}
		previous = s.eventID
		s.timeline.Clear()
	}
	s.state = StateJoined
	s.eventID = eventID
	return previous
}

// Leave undoes one join of the given room. Returns false when the session
// was not joined to that room; callers treat that as a harmless no-op.
func (s *Session) Leave(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateJoined || s.eventID != eventID {
		return false
	}
	s.state = StateIdle
	s.eventID = ""
	s.timeline.Clear()
	return true
}

// LeaveCurrent tears the session down unconditionally, returning the room
// that was joined ("" if idle). Used on disconnect.
func (s *Session) LeaveCurrent() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateJoined {
		return ""
	}
	eventID := s.eventID
	s.state = StateIdle
	s.eventID = ""
	s.timeline.Clear()
	return eventID
}

// Current returns the joined room, if any.
func (s *Session) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventID, s.state == StateJoined
}

// ApplyHistory replaces the session's view with a full history resync for
// its room. History for a room the session is not in is dropped: the view
// that asked for it is gone.
func (s *Session) ApplyHistory(eventID string, history []redis_models.ChatMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateJoined || s.eventID != eventID {
		return false
	}
	s.timeline.ReplaceAll(history)
	return true
}

// ApplyMessage appends one live message to the session's view. Messages
// for a room the session already left are dropped, never applied to a list
// that is no longer displayed.
func (s *Session) ApplyMessage(msg redis_models.ChatMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateJoined || s.eventID != msg.EventID {
		return false
	}
	s.timeline.Append(msg)
	return true
}

// Messages returns a copy of the session's current room view.
func (s *Session) Messages() []redis_models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeline.Messages()
}

// NewOutgoing validates and builds a message for the session's room. Text
// is trimmed; whitespace-only input is rejected locally before anything is
// stored or broadcast. The timestamp falls back to the server clock when
// the client did not provide one.
func (s *Session) NewOutgoing(userID, username, avatar, text string, timestamp time.Time) (*redis_models.ChatMessage, error) {
	eventID, joined := s.Current()
	if !joined {
		return nil, ErrNotInRoom
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	return &redis_models.ChatMessage{
		ID:        uuid.NewString(),
		EventID:   eventID,
		UserID:    userID,
		Username:  username,
		Avatar:    avatar,
		Text:      trimmed,
		Timestamp: timestamp,
	}, nil
}
