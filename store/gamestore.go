package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/sibyl/engine"
)

var (
	ErrUnknownSessionID     = errors.New("unknown session ID")
	ErrFnDuplicateSessionID = func(sessionID string) error {
		return fmt.Errorf("session with id \"%s\" already exists", sessionID)
	}
)

type SessionStore interface {
	FindSession(sessionID string) *engine.Session
	AddSession(session *engine.Session) error
	RemoveSession(sessionID string) error
	Len() int
}

// InMemorySessionStore maps session id to session
type InMemorySessionStore struct {
	mu       sync.RWMutex
	Sessions map[string]*engine.Session
}

// NewInMemorySessionStore constructs an InMemorySessionStore
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		Sessions: map[string]*engine.Session{},
	}
}

func (s *InMemorySessionStore) FindSession(sessionID string) *engine.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.Sessions[sessionID]
	if !ok {
		return nil
	}
	return session
}

func (s *InMemorySessionStore) AddSession(session *engine.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Sessions[session.ID()]; exists {
		return ErrFnDuplicateSessionID(session.ID())
	}

	s.Sessions[session.ID()] = session
	return nil
}

func (s *InMemorySessionStore) RemoveSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Sessions[sessionID]; !ok {
		return ErrUnknownSessionID
	}

	delete(s.Sessions, sessionID)
	return nil
}

func (s *InMemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Sessions)
}
