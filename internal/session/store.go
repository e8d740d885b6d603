package session

import (
	"github.com/hashicorp/golang-lru/v2"

	"toolrent/internal/domain"
)

// DefaultCapacity bounds how many concurrent dialogue sessions are kept.
const DefaultCapacity = 1000

// Store keeps per-user dialogue sessions in memory. Sessions are
// transient; evicting an idle user's slot only costs them a re-prompt.
type Store struct {
	cache *lru.Cache[int64, *domain.Session]
}

// NewStore creates a session store with the given capacity.
func NewStore(capacity int) (*Store, error) {
	cache, err := lru.New[int64, *domain.Session](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

// Get returns the user's session, or a fresh idle one when absent.
func (s *Store) Get(userID int64) *domain.Session {
	if sess, ok := s.cache.Get(userID); ok {
		return sess
	}
	return domain.NewIdleSession()
}

// Set replaces the user's session wholesale.
func (s *Store) Set(userID int64, sess *domain.Session) {
	s.cache.Add(userID, sess)
}

// Reset returns the user to the idle state, discarding scratch data.
func (s *Store) Reset(userID int64) {
	s.cache.Add(userID, domain.NewIdleSession())
}
