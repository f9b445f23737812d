package service

import "sync"

// tripLocks hands out one mutex per trip id.  The ticket engine holds
// the trip's mutex across the seat-free check, the buyer-limit count
// and the insert, closing the check-then-act race between concurrent
// sales on the same trip.  Locks are never released back; the set of
// trips is small and process-lifetime.
type tripLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newTripLocks() *tripLocks {
	return &tripLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *tripLocks) lock(tripID string) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[tripID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[tripID] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m
}
