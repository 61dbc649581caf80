package service

import (
	"context"
	"sync"
	"time"

	"github.com/khangviet/storefront/internal/dto"
)

type sessionState struct {
	splashShown bool
	lastSeen    time.Time
}

// SessionServiceImpl tracks per-session UI state that lives only in process memory.
type SessionServiceImpl struct {
	cart CartService
	auth AuthService
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionState
}

func CreateSessionService(cart CartService, auth AuthService) *SessionServiceImpl {
	return &SessionServiceImpl{
		cart:     cart,
		auth:     auth,
		now:      time.Now,
		sessions: map[string]*sessionState{},
	}
}

func (s *SessionServiceImpl) entry(sessionID string) *sessionState {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &sessionState{}
		s.sessions[sessionID] = st
	}
	st.lastSeen = s.now()
	return st
}

func (s *SessionServiceImpl) Touch(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(sessionID)
}

func (s *SessionServiceImpl) MarkSplashShown(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(sessionID).splashShown = true
}

func (s *SessionServiceImpl) State(ctx context.Context, sessionID string) dto.SessionResponse {
	s.mu.Lock()
	splash := s.entry(sessionID).splashShown
	s.mu.Unlock()

	creds := s.auth.Credentials(ctx, sessionID)
	return dto.SessionResponse{
		SplashShown:   splash,
		CartCount:     s.cart.GetCart(ctx, sessionID).Count(),
		Authenticated: creds.Authenticated(),
		Role:          creds.Role,
		Email:         tokenSubject(creds),
	}
}

// Sweep forgets sessions idle for longer than idle and returns their ids.
func (s *SessionServiceImpl) Sweep(idle time.Duration) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	var evicted []string
	for id, st := range s.sessions {
		if st.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}
