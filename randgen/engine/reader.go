package engine

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

var _ Source = (*readerSource)(nil)

type readerSource struct {
	r   io.Reader
	buf [8]byte
}

func (s *readerSource) Uint64() uint64 {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		panic(fmt.Sprintf("engine: failed to read entropy: %v", err))
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// FromReader adapts a byte stream into an engine. Each draw consumes eight
// bytes; a read failure panics as engines cannot report errors.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

// FromLabel returns an engine keyed by an arbitrary text label, typically
// a test name, backed by a SHAKE256 extendable output.
func FromLabel(label string) Source {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(label))
	return FromReader(h)
}
