package common

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/randgen/common/errors"
	"github.com/oasisprotocol/randgen/randgen/engine"
)

func TestEngineConfig(t *testing.T) {
	require := require.New(t)
	t.Cleanup(func() {
		viper.Set(CfgEngineKind, string(engine.KindPCG))
		viper.Set(CfgEngineLabel, "")
	})

	var out bytes.Buffer
	viper.Set(CfgEngineKind, "ChaCha8")
	viper.Set(CfgEngineSeed, 42)
	cfg, err := EngineConfig(&out)
	require.NoError(err)
	require.Equal(engine.Config{Kind: engine.KindChaCha8, Seed: 42}, cfg)
	require.Empty(out.String(), "configured seeds should not be reported")

	viper.Set(CfgEngineKind, "label")
	_, err = EngineConfig(&out)
	require.True(errors.Is(err, engine.ErrMissingLabel))

	viper.Set(CfgEngineLabel, "TestEngineConfig")
	cfg, err = EngineConfig(&out)
	require.NoError(err)
	eng, err := NewEngine(cfg)
	require.NoError(err)
	require.Equal(engine.FromLabel("TestEngineConfig").Uint64(), eng.Uint64())

	viper.Set(CfgEngineKind, "mt19937")
	_, err = EngineConfig(&out)
	require.True(errors.Is(err, engine.ErrUnsupportedKind))
}

func TestWriteMetrics(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "randgen_test_total",
		Help: "Test counter.",
	})
	reg.MustRegister(counter)
	counter.Add(3)

	mfs, err := reg.Gather()
	require.NoError(err)
	require.Len(mfs, 1)
	require.Equal(dto.MetricType_COUNTER, mfs[0].GetType())

	var buf bytes.Buffer
	require.NoError(WriteMetrics(&buf, reg))
	require.Contains(buf.String(), "# TYPE randgen_test_total counter")
	require.Contains(buf.String(), "randgen_test_total 3")

	buf.Reset()
	require.NoError(DumpMetrics(&buf))
	require.Empty(buf.String(), "metrics should only be dumped on request")
}

func TestLogFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "randgen.log")
	viper.Set(cfgLogFile, path)
	viper.Set(cfgLogLevel, "info")
	t.Cleanup(func() {
		viper.Set(cfgLogFile, "")
		viper.Set(cfgLogLevel, "warn")
	})

	require.NoError(initLogging())
	f := logFile
	require.NotNil(f)
	rootLog.Info("writing to the log file")

	Cleanup()
	require.Nil(logFile)
	require.ErrorIs(f.Close(), os.ErrClosed, "Cleanup should close the log file")
	Cleanup()

	data, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(data), "writing to the log file")
}
