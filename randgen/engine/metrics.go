package engine

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	drawCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "randgen_engine_draws_total",
			Help: "Number of 64-bit words drawn from an engine.",
		},
		[]string{"engine"},
	)

	engineCollectors = []prometheus.Collector{
		drawCount,
	}

	metricsOnce sync.Once
)

type countedSource struct {
	inner   Source
	counter prometheus.Counter
}

func (s *countedSource) Uint64() uint64 {
	s.counter.Inc()
	return s.inner.Uint64()
}

// Counted wraps an engine so that every draw increments the
// randgen_engine_draws_total counter labeled with name.
func Counted(inner Source, name string) Source {
	initMetrics()

	return &countedSource{
		inner:   inner,
		counter: drawCount.WithLabelValues(name),
	}
}

func initMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(engineCollectors...)
	})
}
