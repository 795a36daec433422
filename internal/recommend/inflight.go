package recommend

import "sync"

// inflightSet tracks which users currently have a recommendation cycle
// running. A cycle's two network round trips can outlast the sweep
// interval, so overlapping sweeps must not start a second cycle for the
// same chat.
type inflightSet struct {
	mu  sync.Mutex
	ids map[int64]struct{}
}

func newInflightSet() *inflightSet {
	return &inflightSet{ids: make(map[int64]struct{})}
}

// TryAcquire marks chatID as in flight. Returns false if a cycle is
// already running for that chat.
func (s *inflightSet) TryAcquire(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[chatID]; ok {
		return false
	}
	s.ids[chatID] = struct{}{}
	return true
}

func (s *inflightSet) Release(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, chatID)
}
