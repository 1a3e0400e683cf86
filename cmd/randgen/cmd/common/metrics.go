package common

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CfgMetricsDump is the flag used to print collected metrics on exit.
const CfgMetricsDump = "metrics.dump"

var metricsFlags = flag.NewFlagSet("", flag.ContinueOnError)

// DumpMetrics writes the metrics of the default registry to w in the
// Prometheus text exposition format, iff the metrics dump flag is set.
func DumpMetrics(w io.Writer) error {
	if !viper.GetBool(CfgMetricsDump) {
		return nil
	}
	return WriteMetrics(w, prometheus.DefaultGatherer)
}

// WriteMetrics writes the gathered metrics to w in the Prometheus text
// exposition format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

func initMetricsFlags() {
	metricsFlags.Bool(CfgMetricsDump, false, "print collected metrics on exit")

	_ = viper.BindPFlags(metricsFlags)
}
