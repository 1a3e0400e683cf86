package sample

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/randgen/common/cbor"
)

func TestWriter(t *testing.T) {
	require := require.New(t)

	_, err := NewWriter(&bytes.Buffer{}, "yaml")
	require.Error(err)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, "TEXT")
	require.NoError(err)
	require.NoError(w.Write(reflect.ValueOf("a b")))
	require.NoError(w.Write(reflect.ValueOf([]int{1, 2})))
	require.Equal("\"a b\"\n[1 2]\n", buf.String())

	buf.Reset()
	w, err = NewWriter(&buf, FormatJSON)
	require.NoError(err)
	require.NoError(w.Write(reflect.ValueOf(struct{ F0 int8 }{F0: -3})))
	require.Equal("{\"F0\":-3}\n", buf.String())

	buf.Reset()
	w, err = NewWriter(&buf, FormatCBOR)
	require.NoError(err)
	require.NoError(w.Write(reflect.ValueOf(uint16(500))))
	require.NoError(w.Write(reflect.ValueOf("x")))
	require.Equal(append(cbor.Marshal(uint16(500)), cbor.Marshal("x")...), buf.Bytes())
}
