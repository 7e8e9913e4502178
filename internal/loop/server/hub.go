package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/nuggethunt/internal/config"
)

// Hub hands out sessions and tracks the live ones so a shutdown can notify
// every player and wait for them to leave.
type Hub struct {
	profile config.Profile
	log     *log.Logger

	mu       sync.RWMutex
	sessions map[int]*Session
	nextID   int
}

// NewHub creates a hub whose sessions play the given profile.
func NewHub(profile config.Profile, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		profile:  profile,
		log:      logger,
		sessions: make(map[int]*Session),
		nextID:   1,
	}
}

// Open registers a new session. The caller runs it and must Close it.
func (h *Hub) Open(username string, opts ...SessionOption) *Session {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.mu.Unlock()

	opts = append([]SessionOption{WithLogger(h.log)}, opts...)
	s := NewSession(id, username, h.profile, opts...)

	h.mu.Lock()
	h.sessions[id] = s
	total := len(h.sessions)
	h.mu.Unlock()

	h.log.Info("session opened", "session", id, "user", username, "players", total)
	return s
}

// Close forgets a session.
func (h *Hub) Close(s *Session) {
	h.mu.Lock()
	_, ok := h.sessions[s.ID]
	delete(h.sessions, s.ID)
	total := len(h.sessions)
	h.mu.Unlock()

	if ok {
		h.log.Info("session closed", "session", s.ID, "user", s.Username, "players", total)
	}
}

// Players returns the number of live sessions.
func (h *Hub) Players() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown notifies every session that the server is going away and waits
// for all of them to close, up to timeout.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.RLock()
	for _, s := range h.sessions {
		s.notify(Event{Type: EventServerShutdown})
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			h.log.Warn("shutdown timed out", "players", h.Players())
			return
		case <-ticker.C:
		}
	}
}
