package querycache

import "sync"

// genStore keeps one generation counter per key path. The effective
// generation of a key is the sum along its prefix chain, so bumping
// "workouts" moves the effective generation of every workouts subkey.
type genStore struct {
	mu   sync.RWMutex
	gens map[string]uint64
}

func newGenStore() *genStore {
	return &genStore{gens: make(map[string]uint64)}
}

// Snapshot returns the current effective generation; unseen keys are 0.
func (s *genStore) Snapshot(k Key) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum uint64
	for _, p := range k.Prefixes() {
		sum += s.gens[p.String()]
	}
	return sum
}

// Bump atomically increments the counter at exactly this path and returns
// its new value. Every key extending the path sees a moved Snapshot.
func (s *genStore) Bump(k Key) uint64 {
	key := k.String()
	s.mu.Lock()
	s.gens[key]++
	g := s.gens[key]
	s.mu.Unlock()
	return g
}

// Reset drops every counter. Only used when the whole cache is cleared.
func (s *genStore) Reset() {
	s.mu.Lock()
	s.gens = make(map[string]uint64)
	s.mu.Unlock()
}
