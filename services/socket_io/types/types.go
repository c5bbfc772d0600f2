package socketio_types

import (
	"sync"

	"SportHub/services/chat"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer contains the socket.io server plus per-user connection and
// chat session state. Each connected user carries exactly one chat.Session,
// which is what enforces the one-room-at-a-time invariant.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track username -> socket connections
	UserConnections map[string]*socket.Socket
	// Map to track username -> chat room session
	UserSessions map[string]*chat.Session
	mutex        sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
		UserSessions:    make(map[string]*chat.Session),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(username string, sock *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[username] = sock
	s.UserSessions[username] = chat.NewSession()
}

func (s *SocketServer) RemoveConnection(username string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, username)
	delete(s.UserSessions, username)
}

func (s *SocketServer) GetConnection(username string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	sock, exists := s.UserConnections[username]
	return sock, exists
}

func (s *SocketServer) GetSession(username string) (*chat.Session, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	session, exists := s.UserSessions[username]
	return session, exists
}

// SessionsInRoom returns every connected session currently joined to the
// given event's chat room.
func (s *SocketServer) SessionsInRoom(eventID string) []*chat.Session {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	var sessions []*chat.Session
	for _, session := range s.UserSessions {
		if current, joined := session.Current(); joined && current == eventID {
			sessions = append(sessions, session)
		}
	}
	return sessions
}
