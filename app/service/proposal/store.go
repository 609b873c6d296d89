package proposal

import (
	"sync"

	"github.com/samber/do"
)

// Service holds at most one pending proposed date-time per session key.
// State is volatile, process-lifetime only: a stale proposal survives until
// it is overwritten, declined or the process exits.
type Service struct {
	mu      sync.RWMutex
	pending map[string]string

	lockMu   sync.Mutex
	sessions map[string]*sync.Mutex
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		pending:  make(map[string]string),
		sessions: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Service) Get(session string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	iso, ok := s.pending[session]
	return iso, ok
}

func (s *Service) Put(session, iso string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[session] = iso
}

func (s *Service) Remove(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, session)
}

// LockSession serializes resolution for one session key so a read-then-write
// sequence cannot interleave with a concurrent request for the same session.
// Returns the matching unlock func.
func (s *Service) LockSession(session string) func() {
	s.lockMu.Lock()
	m, ok := s.sessions[session]
	if !ok {
		m = &sync.Mutex{}
		s.sessions[session] = m
	}
	s.lockMu.Unlock()

	m.Lock()
	return m.Unlock
}
