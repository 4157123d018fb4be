package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

// ErrSessionNotFound is returned for any read or write against a session id
// that was never initialized or has been destroyed. Absent sessions are an
// explicit error rather than a silent empty value.
var ErrSessionNotFound = errors.New("session not found")

// session is the store's internal record. Its mutex serializes all
// operations for one session id, so overlapping requests for the same
// session cannot interleave a merge. The mutex is never held across a
// language-model call.
type session struct {
	mu         sync.Mutex
	profile    models.UserProfile
	transcript []models.ChatMessage
	lastActive time.Time
}

// Store owns the sessionId -> session mapping. The outer RWMutex guards the
// map itself; per-session mutexes guard each session's state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
	idleTTL  time.Duration
}

func NewStore(idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*session),
		idleTTL:  idleTTL,
	}
}

// Init creates a new session with an empty transcript and a default profile
// and returns its id.
func (s *Store) Init() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{
		profile: models.UserProfile{
			Expenses:      []models.Expense{},
			Goals:         []models.Goal{},
			RiskTolerance: models.RiskConservative,
		},
		lastActive: time.Now(),
	}
	s.mu.Unlock()
	return id
}

func (s *Store) get(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Profile returns a copy of the session's profile.
func (s *Store) Profile(id string) (models.UserProfile, error) {
	sess, err := s.get(id)
	if err != nil {
		return models.UserProfile{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = time.Now()
	return copyProfile(sess.profile), nil
}

// UpdateProfile shallow-merges the partial request into the stored profile:
// supplied fields overwrite, omitted fields keep their prior value. The
// merged profile is returned.
func (s *Store) UpdateProfile(id string, req models.UpdateProfileRequest) (models.UserProfile, error) {
	sess, err := s.get(id)
	if err != nil {
		return models.UserProfile{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if req.Income != nil {
		sess.profile.Income = *req.Income
	}
	if req.MonthlyExpenses != nil {
		sess.profile.MonthlyExpenses = *req.MonthlyExpenses
	}
	if req.Expenses != nil {
		sess.profile.Expenses = append([]models.Expense(nil), (*req.Expenses)...)
	}
	if req.Goals != nil {
		sess.profile.Goals = append([]models.Goal(nil), (*req.Goals)...)
	}
	if req.RiskTolerance != nil {
		sess.profile.RiskTolerance = *req.RiskTolerance
	}
	if req.Preferences != nil {
		sess.profile.Preferences = *req.Preferences
	}
	if req.Type != nil {
		sess.profile.Type = *req.Type
	}

	sess.lastActive = time.Now()
	return copyProfile(sess.profile), nil
}

// AddGoal appends a goal to the session's profile.
func (s *Store) AddGoal(id string, goal models.Goal) (models.UserProfile, error) {
	sess, err := s.get(id)
	if err != nil {
		return models.UserProfile{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.profile.Goals = append(sess.profile.Goals, goal)
	sess.lastActive = time.Now()
	return copyProfile(sess.profile), nil
}

// AppendTurn adds one transcript entry.
func (s *Store) AppendTurn(id, role, content string) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.transcript = append(sess.transcript, models.ChatMessage{Role: role, Content: content})
	sess.lastActive = time.Now()
	return nil
}

// Transcript returns a copy of the conversation in insertion order.
func (s *Store) Transcript(id string) ([]models.ChatMessage, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return append([]models.ChatMessage(nil), sess.transcript...), nil
}

// ClearTranscript empties the conversation but keeps the profile.
func (s *Store) ClearTranscript(id string) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.transcript = nil
	sess.lastActive = time.Now()
	return nil
}

// Destroy removes the session entirely. Destroying an absent session is a
// no-op.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// SweepIdle removes sessions idle past the store's TTL and reports how many
// were removed. A zero TTL disables sweeping.
func (s *Store) SweepIdle() int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-s.idleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastActive.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func copyProfile(p models.UserProfile) models.UserProfile {
	out := p
	out.Expenses = append([]models.Expense(nil), p.Expenses...)
	out.Goals = append([]models.Goal(nil), p.Goals...)
	return out
}
