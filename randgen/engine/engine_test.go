package engine

import (
	"bytes"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/randgen/common/errors"
	"github.com/oasisprotocol/randgen/randgen/chisquared"
)

func draw(src Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}
	return out
}

func TestNew(t *testing.T) {
	require := require.New(t)

	for _, kind := range Kinds {
		cfg := Config{Kind: kind, Seed: 42, Label: "TestNew"}
		a, err := New(cfg)
		require.NoError(err, "New(%s)", cfg)
		b, err := New(cfg)
		require.NoError(err, "New(%s)", cfg)
		require.Equal(draw(a, 16), draw(b, 16), "%s should be deterministic", cfg)
	}

	_, err := New(Config{Kind: "mt19937"})
	require.True(errors.Is(err, ErrUnsupportedKind))
	require.Contains(err.Error(), "mt19937")

	_, err = New(Config{Kind: KindLabel})
	require.True(errors.Is(err, ErrMissingLabel))

	k, err := ParseKind("ChaCha8")
	require.NoError(err)
	require.Equal(KindChaCha8, k)
}

func TestSeedsDiverge(t *testing.T) {
	require := require.New(t)

	require.NotEqual(draw(NewPCG(1), 4), draw(NewPCG(2), 4))
	require.NotEqual(draw(FromLabel("a"), 4), draw(FromLabel("b"), 4))
	require.Equal(draw(NewPCG(7), 4), draw(rand.NewPCG(7, 0), 4), "NewPCG should match math/rand/v2")
}

func TestByteSourceReplay(t *testing.T) {
	require := require.New(t)

	tracker := NewTracking(NewPCG(42))
	original := draw(tracker, 10)
	require.Len(tracker.Traceback(), 80)

	replay := FromBytes(tracker.Traceback())
	require.Equal(original, draw(replay, 10), "replay should reproduce the tracked words")
	require.Zero(replay.Exhausted)

	// Past the end of the backing the source keeps going deterministically.
	tail := draw(replay, 3)
	require.Equal(24, replay.Exhausted)
	again := FromBytes(tracker.Traceback())
	_ = draw(again, 10)
	require.Equal(tail, draw(again, 3))
}

func TestByteSourcePartialWord(t *testing.T) {
	require := require.New(t)

	src := FromBytes([]byte{0, 0, 0, 0, 0, 0, 0, 1, 0xff})
	require.EqualValues(1, src.Uint64())
	_ = src.Uint64()
	require.Equal(8, src.Exhausted, "a trailing partial word should not be consumed")
}

func TestReaderAdapter(t *testing.T) {
	require := require.New(t)

	src := FromReader(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}))
	require.EqualValues(1, src.Uint64())
	require.Panics(func() { src.Uint64() }, "exhausted reader should panic")

	// Pearson's chi-squared test for goodness of fit of a die rolled with
	// the label engine.
	const nrSamples = 6000
	rng := rand.New(FromLabel("engine:tests"))
	samples := make([]int, 6)
	for i := 0; i < nrSamples; i++ {
		samples[rng.IntN(6)]++
	}
	ok, chiSq, err := chisquared.FitsUniform(samples, 0.999)
	require.NoError(err)
	t.Logf("chiSq: %v", chiSq)
	require.True(ok, "label engine output should be uniform")
}

func TestLocked(t *testing.T) {
	require := require.New(t)

	src := NewLocked(1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = draw(src, 1000)
		}()
	}
	wg.Wait()

	require.Equal(draw(NewLocked(3), 8), draw(NewLocked(3), 8))
}

func TestCounted(t *testing.T) {
	require := require.New(t)

	counter := drawCount.WithLabelValues("TestCounted")
	before := testutil.ToFloat64(counter)

	src := Counted(NewPCG(1), "TestCounted")
	_ = draw(src, 5)
	require.Equal(before+5, testutil.ToFloat64(counter))
	require.Equal(draw(NewPCG(1), 1)[0], Counted(NewPCG(1), "TestCounted").Uint64(), "counting should not alter the stream")
}
