package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	model "github.com/helphopelive/story-builder/backend/internal/model/session"
)

var ErrSessionNotFound = errors.New("session not found")

// Store owns all session records. Callers receive snapshots and write back
// whole records through the mutators below; no component keeps a live
// reference across calls.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

// NewStore bootstraps the in-memory session store. Records are ephemeral by
// design; eviction is a deployment concern.
func NewStore() *Store {
	return &Store{sessions: make(map[string]model.Session)}
}

// Create provisions an empty session and returns its identifier.
func (s *Store) Create(_ context.Context) (model.Session, error) {
	now := time.Now().UTC()
	sess := model.Session{
		ID:        uuid.NewString(),
		Answers:   []model.Answer{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get retrieves a snapshot of a session by identifier.
func (s *Store) Get(_ context.Context, sessionID string) (model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return model.Session{}, ErrSessionNotFound
	}
	return copySession(sess), nil
}

// ReplaceAnswers overwrites the session's full answer set. The wizard always
// submits the complete current collection, never deltas.
func (s *Store) ReplaceAnswers(_ context.Context, sessionID string, answers []model.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	cp := make([]model.Answer, len(answers))
	copy(cp, answers)
	sess.Answers = cp
	sess.UpdatedAt = time.Now().UTC()
	s.sessions[sessionID] = sess
	return nil
}

// SetTone records the creator's tone choice.
func (s *Store) SetTone(_ context.Context, sessionID string, tone model.Tone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	sess.Tone = tone
	sess.UpdatedAt = time.Now().UTC()
	s.sessions[sessionID] = sess
	return nil
}

// TrySetDraft writes the generated story draft back into the session,
// silently doing nothing when the session is unknown. Draft write-back
// happens after a potentially slow external call and the owning session may
// have been evicted in the meantime; generation must not fail for that.
func (s *Store) TrySetDraft(_ context.Context, sessionID, draft string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}

	sess.StoryDraft = draft
	sess.UpdatedAt = time.Now().UTC()
	s.sessions[sessionID] = sess
}

// copySession keeps the answers slice non-nil so an empty collection
// serializes as [] rather than null on the wire.
func copySession(sess model.Session) model.Session {
	cp := make([]model.Answer, len(sess.Answers))
	copy(cp, sess.Answers)
	sess.Answers = cp
	return sess
}
