package engine

import (
	exprand "golang.org/x/exp/rand"
)

var _ Source = (*LockedSource)(nil)

// LockedSource is a PCG engine guarded by a mutex. It is the only engine
// that may be driven from several goroutines at once; the interleaving of
// draws between goroutines is of course not deterministic.
type LockedSource struct {
	src exprand.LockedSource
}

// Uint64 returns the next word.
func (s *LockedSource) Uint64() uint64 {
	return s.src.Uint64()
}

// NewLocked creates a concurrency-safe engine using the provided seed.
func NewLocked(seed uint64) *LockedSource {
	s := &LockedSource{}
	s.src.Seed(seed)
	return s
}
