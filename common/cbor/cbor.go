// Package cbor provides helpers for encoding canonical CBOR.
//
// The same generated value always has the same serialization. Corpus blobs
// written by the randgen tool rely on this to be content addressable, and
// replay relies on it to check a re-drawn value against its blob.
package cbor

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

var encMode cbor.EncMode

// Marshal serializes a given type into a CBOR byte vector.
func Marshal(src interface{}) []byte {
	b, err := encMode.Marshal(src)
	if err != nil {
		panic("common/cbor: failed to marshal: " + err.Error())
	}
	return b
}

// NewEncoder creates a new CBOR encoder writing a stream of items to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

func init() {
	var err error
	if encMode, err = cbor.CanonicalEncOptions().EncMode(); err != nil {
		panic(err)
	}
}
