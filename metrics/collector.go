package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "firenear"

// Collector tracks the progress of the block emission. A nil *Collector is
// valid and records nothing.
type Collector struct {
	headBlockNumber    prometheus.Gauge
	headBlockTimeDrift prometheus.Gauge
	blocksEmitted      prometheus.Counter
	bytesEmitted       prometheus.Counter
	projectionDuration prometheus.Histogram
}

func NewCollector(registerer prometheus.Registerer) *Collector {
	factory := promauto.With(registerer)

	return &Collector{
		headBlockNumber: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "head_block_number",
			Help:      "height of the last emitted block",
		}),
		headBlockTimeDrift: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "head_block_time_drift_seconds",
			Help:      "seconds between the last emitted block timestamp and now",
		}),
		blocksEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_emitted_total",
			Help:      "number of FIRE BLOCK lines written",
		}),
		bytesEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_emitted_total",
			Help:      "number of bytes written to the output, line framing included",
		}),
		projectionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "projection_duration_seconds",
			Help:      "time spent projecting a block to its wire form",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
		}),
	}
}

func (c *Collector) BlockProjected(duration time.Duration) {
	if c == nil {
		return
	}
	c.projectionDuration.Observe(duration.Seconds())
}

func (c *Collector) BlockEmitted(height uint64, blockTime time.Time, size uint64) {
	if c == nil {
		return
	}

	c.headBlockNumber.Set(float64(height))
	c.headBlockTimeDrift.Set(time.Since(blockTime).Seconds())
	c.blocksEmitted.Inc()
	c.bytesEmitted.Add(float64(size))
}
