package services

import (
	"sync"
	"time"

	apperrors "catalog/internal/errors"
	"catalog/internal/logger"
	"catalog/internal/uuid"
	"catalog/internal/viewstate"
)

// session pairs a view-state store with its bookkeeping.
type session struct {
	store     *viewstate.Store
	createdAt time.Time
	updatedAt time.Time
}

// sessionService keeps browsing sessions in process memory only. Every
// event on a session runs under the registry lock, so each action yields
// exactly one new state.
type sessionService struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	recorder ActionRecorder
	now      func() time.Time
}

// NewSessionService creates a SessionServicer whose sessions expire after
// ttl without activity. A non-positive ttl disables expiry.
func NewSessionService(ttl time.Duration, recorder ActionRecorder) SessionServicer {
	return newSessionService(ttl, recorder, time.Now)
}

func newSessionService(ttl time.Duration, recorder ActionRecorder, now func() time.Time) *sessionService {
	return &sessionService{
		sessions: make(map[string]*session),
		ttl:      ttl,
		recorder: recorder,
		now:      now,
	}
}

// CreateSession starts a session with the default view state.
func (s *sessionService) CreateSession() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	now := s.now()
	id := uuid.New()
	sess := &session{
		store:     viewstate.NewStore(),
		createdAt: now,
		updatedAt: now,
	}
	s.sessions[id] = sess

	logger.Get().Debugw("session created", "session_id", id, "active_sessions", len(s.sessions))
	return snapshot(id, sess)
}

// GetSession returns the current state of a session.
func (s *sessionService) GetSession(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	return snapshot(id, sess), nil
}

// Dispatch applies one action to a session's view state.
func (s *sessionService) Dispatch(id string, action viewstate.Action) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}

	before := sess.store.State()
	after, err := sess.store.Dispatch(action)
	if err != nil {
		return nil, err
	}
	sess.updatedAt = s.now()

	if s.recorder != nil {
		s.recorder.Record(id, action, before, after)
	}
	return snapshot(id, sess), nil
}

// DeleteSession discards a session and its view state.
func (s *sessionService) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookupLocked(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// lookupLocked finds a live session; expired sessions are dropped on sight.
func (s *sessionService) lookupLocked(id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	if s.expiredLocked(sess) {
		delete(s.sessions, id)
		return nil, apperrors.ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionService) expiredLocked(sess *session) bool {
	return s.ttl > 0 && s.now().Sub(sess.updatedAt) > s.ttl
}

// sweepLocked removes every expired session.
func (s *sessionService) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if s.expiredLocked(sess) {
			delete(s.sessions, id)
		}
	}
}

func snapshot(id string, sess *session) *Session {
	return &Session{
		ID:        id,
		State:     sess.store.State(),
		CreatedAt: sess.createdAt,
		UpdatedAt: sess.updatedAt,
	}
}
