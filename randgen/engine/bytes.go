package engine

import (
	"encoding/binary"
	"math/rand/v2"
)

var (
	_ Source = (*ByteSource)(nil)
	_ Source = (*TrackingSource)(nil)
)

// ByteSource is an engine that replays words from a backing byte slice.
//
// This lets a fuzzer steer generation directly: the fuzzer mutates the
// backing bytes and every draw consumes the next eight of them, big-endian.
// Once the backing is exhausted the source continues with a PCG seeded by
// the backing length, so replays stay deterministic.
type ByteSource struct {
	Backing   []byte
	Exhausted int

	pos      int
	fallback *rand.PCG
}

// Uint64 returns the next word.
func (s *ByteSource) Uint64() uint64 {
	if s.pos+8 > len(s.Backing) {
		s.Exhausted += 8
		if s.fallback == nil {
			s.fallback = rand.NewPCG(uint64(len(s.Backing)), 0)
		}
		return s.fallback.Uint64()
	}

	s.pos += 8
	return binary.BigEndian.Uint64(s.Backing[s.pos-8 : s.pos])
}

// FromBytes returns a new engine with the given backing array.
func FromBytes(backing []byte) *ByteSource {
	return &ByteSource{
		Backing: backing,
	}
}

// TrackingSource records every word drawn from an inner engine.
type TrackingSource struct {
	inner     Source
	traceback []byte
}

// Uint64 returns the next word of the inner engine and records it.
func (s *TrackingSource) Uint64() uint64 {
	v := s.inner.Uint64()
	s.traceback = binary.BigEndian.AppendUint64(s.traceback, v)
	return v
}

// Traceback returns the bytes drawn so far, in a form FromBytes replays.
func (s *TrackingSource) Traceback() []byte {
	return s.traceback
}

// NewTracking returns a new engine that records the words drawn from inner.
func NewTracking(inner Source) *TrackingSource {
	return &TrackingSource{
		inner: inner,
	}
}
