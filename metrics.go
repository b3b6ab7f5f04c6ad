package localstore

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedMedium decorates a Medium with Prometheus metrics: an
// operation counter, an error counter and a latency histogram, all labeled
// by operation name.
type InstrumentedMedium struct {
	next Medium

	ops      *prometheus.CounterVec
	errs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInstrumentedMedium wraps next and registers the collectors on reg.
func NewInstrumentedMedium(next Medium, reg prometheus.Registerer) (*InstrumentedMedium, error) {
	im := &InstrumentedMedium{
		next: next,
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localstore_medium_operations_total",
			Help: "Total number of medium operations by type.",
		}, []string{"op"}),
		errs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localstore_medium_errors_total",
			Help: "Total number of failed medium operations by type.",
		}, []string{"op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "localstore_medium_operation_seconds",
			Help:    "Medium operation latency in seconds by type.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
	for _, coll := range []prometheus.Collector{im.ops, im.errs, im.duration} {
		if err := reg.Register(coll); err != nil {
			return nil, err
		}
	}
	return im, nil
}

func (im *InstrumentedMedium) observe(op string, start time.Time, err error) {
	im.ops.WithLabelValues(op).Inc()
	im.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		im.errs.WithLabelValues(op).Inc()
	}
}

func (im *InstrumentedMedium) GetItem(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	value, ok, err := im.next.GetItem(ctx, key)
	im.observe("get", start, err)
	return value, ok, err
}

func (im *InstrumentedMedium) SetItem(ctx context.Context, key, value string) error {
	start := time.Now()
	err := im.next.SetItem(ctx, key, value)
	im.observe("set", start, err)
	return err
}

func (im *InstrumentedMedium) RemoveItem(ctx context.Context, key string) error {
	start := time.Now()
	err := im.next.RemoveItem(ctx, key)
	im.observe("remove", start, err)
	return err
}

func (im *InstrumentedMedium) Clear(ctx context.Context) error {
	start := time.Now()
	err := im.next.Clear(ctx)
	im.observe("clear", start, err)
	return err
}
