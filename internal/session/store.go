// Package session keeps checkout sessions in memory. Sessions are transient:
// they exist for the duration of one purchase and are evicted on completion,
// explicit close or TTL expiry. Durable state lives only in order records.
package session

import (
	"sync"
	"time"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/verify"
)

type record struct {
	sess      model.CheckoutSession
	verifier  *verify.Manager
	finalized bool
}

// Store is a TTL-bounded in-memory session registry. All session mutation
// goes through Update so the verification callbacks and HTTP handlers never
// race on session state.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*record
}

// New creates a store evicting sessions ttl after creation.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*record),
	}
}

// Put registers a new session and its attempt manager. Creation and expiry
// timestamps are assigned here.
func (s *Store) Put(sess model.CheckoutSession) model.CheckoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess.CreatedAt = now
	sess.ExpiresAt = now.Add(s.ttl)
	s.sessions[sess.ID] = &record{sess: sess, verifier: verify.NewManager()}
	return sess
}

// Get returns a snapshot of the session owned by userID.
func (s *Store) Get(id string, userID int64) (model.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.owned(id, userID)
	if err != nil {
		return model.CheckoutSession{}, err
	}
	return rec.sess, nil
}

// Verifier returns the attempt manager of the session owned by userID.
func (s *Store) Verifier(id string, userID int64) (*verify.Manager, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.owned(id, userID)
	if err != nil {
		return nil, err
	}
	return rec.verifier, nil
}

// Update mutates the session under the store lock and returns the updated
// snapshot. The callback must not block.
func (s *Store) Update(id string, fn func(*model.CheckoutSession) error) (model.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok {
		return model.CheckoutSession{}, domainErrors.ErrNotFound
	}
	if err := fn(&rec.sess); err != nil {
		return rec.sess, err
	}
	return rec.sess, nil
}

// Claim reserves the session for finalization and cancels any verification
// still polling. A session is claimed at most once; a second claim or a claim
// on a closed session returns ErrSessionClosed.
func (s *Store) Claim(id string) (model.CheckoutSession, error) {
	s.mu.Lock()
	rec, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return model.CheckoutSession{}, domainErrors.ErrNotFound
	}
	closed := rec.sess.State == model.SessionStateCompleted || rec.sess.State == model.SessionStateNeedsSupport
	if rec.finalized || closed {
		s.mu.Unlock()
		return model.CheckoutSession{}, domainErrors.ErrSessionClosed
	}
	rec.finalized = true
	snap := rec.sess
	s.mu.Unlock()

	rec.verifier.Cancel()
	return snap, nil
}

// Remove cancels any active verification and drops the session.
func (s *Store) Remove(id string, userID int64) error {
	s.mu.Lock()
	rec, err := s.owned(id, userID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	delete(s.sessions, id)
	s.mu.Unlock()

	rec.verifier.Cancel()
	return nil
}

// Reap evicts sessions whose TTL has elapsed, cancelling their attempts.
// Returns the number of evicted sessions.
func (s *Store) Reap() int {
	now := s.now()

	s.mu.Lock()
	var expired []*record
	for id, rec := range s.sessions {
		if now.After(rec.sess.ExpiresAt) {
			expired = append(expired, rec)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, rec := range expired {
		rec.verifier.Cancel()
	}
	return len(expired)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) owned(id string, userID int64) (*record, error) {
	rec, ok := s.sessions[id]
	if !ok || rec.sess.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return rec, nil
}
