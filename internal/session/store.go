package session

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// historyLimit caps the per-user sliding window of conversation turns.
const historyLimit = 10

// Store keeps per-user conversation state in a TTL-evicting map. All
// mutations for one user are serialized through a per-key mutex, so
// concurrent messages from the same user cannot race; different users
// proceed fully in parallel.
type Store struct {
	sessions *gocache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a store whose idle sessions expire after ttl.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		sessions: gocache.New(ttl, ttl),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Update runs fn against the user's session under that user's lock and
// stores the result, refreshing the TTL. The session history is truncated
// to the sliding window before it is stored.
func (s *Store) Update(userID string, fn func(*model.Session)) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.load(userID)
	fn(sess)
	if len(sess.History) > historyLimit {
		sess.History = sess.History[len(sess.History)-historyLimit:]
	}
	s.sessions.SetDefault(userID, sess)
}

// Reset replaces the user's session with an empty one.
func (s *Store) Reset(userID string) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.sessions.SetDefault(userID, &model.Session{})
}

// Snapshot returns a copy of the user's current session.
func (s *Store) Snapshot(userID string) model.Session {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.load(userID)
	copied := model.Session{
		History:   append([]model.ChatTurn(nil), sess.History...),
		LastBooks: append([]model.BookRecord(nil), sess.LastBooks...),
	}
	return copied
}

func (s *Store) load(userID string) *model.Session {
	if v, ok := s.sessions.Get(userID); ok {
		if sess, ok := v.(*model.Session); ok {
			return sess
		}
	}
	return &model.Session{}
}

func (s *Store) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
