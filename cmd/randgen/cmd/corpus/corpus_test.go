package corpus

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/typeexpr"
	"github.com/oasisprotocol/randgen/common/cbor"
	"github.com/oasisprotocol/randgen/common/errors"
	"github.com/oasisprotocol/randgen/randgen"
	"github.com/oasisprotocol/randgen/randgen/engine"
)

func TestGenerateReplay(t *testing.T) {
	require := require.New(t)

	typ, err := typeexpr.Parse("tuple([]uint32, string, [2]float64)")
	require.NoError(err)
	value, err := randgen.Resolve(typ)
	require.NoError(err)

	entries := Generate(value, engine.NewPCG(42), 10)
	require.Len(entries, 10)
	for i, entry := range entries {
		v, exhausted := Replay(value, entry.Traceback)
		require.Zero(exhausted, "entry %d", i)
		require.Equal(entry.Blob, cbor.Marshal(v.Interface()), "entry %d should replay", i)
	}

	dir := t.TempDir()
	require.NoError(Write(dir, entries))
	for _, name := range []string{"0.cbor", "0.bin", "9.cbor", "9.bin"} {
		_, err = os.Stat(filepath.Join(dir, name))
		require.NoError(err, name)
	}

	for _, i := range []int{0, 9} {
		path := filepath.Join(dir, strconv.Itoa(i)+".bin")
		v, _ := Replay(value, entries[i].Traceback)
		checked, err := Check(path, v)
		require.NoError(err)
		require.True(checked, "entry %d should check against its blob", i)
	}

	// A short traceback runs past its end and no longer matches its blob.
	v, exhausted := Replay(value, entries[0].Traceback[:8])
	require.NotZero(exhausted)
	_, err = Check(filepath.Join(dir, "0.bin"), v)
	require.True(errors.Is(err, ErrMismatch))

	// Tracebacks without a blob are not checked.
	checked, err := Check(filepath.Join(t.TempDir(), "loose.bin"), v)
	require.NoError(err)
	require.False(checked)
}
