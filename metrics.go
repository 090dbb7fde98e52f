package hepvec

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/hepvec/dispatch"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    dispatchCounter *prometheus.CounterVec
//	    saveHistogram   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordDispatch(op string, b dispatch.BackendID, d time.Duration, err error) {
//	    p.dispatchCounter.WithLabelValues(op, b.String()).Inc()
//	}
type MetricsCollector interface {
	// RecordDispatch is called after each dispatched operation.
	// backend is the backend that computed the result, err is nil if
	// successful.
	RecordDispatch(op string, backend dispatch.BackendID, duration time.Duration, err error)

	// RecordSave is called after each array save.
	RecordSave(duration time.Duration, err error)

	// RecordLoad is called after each array load.
	RecordLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDispatch(string, dispatch.BackendID, time.Duration, error) {}
func (NoopMetricsCollector) RecordSave(time.Duration, error)                                 {}
func (NoopMetricsCollector) RecordLoad(time.Duration, error)                                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DispatchCount      atomic.Int64
	DispatchErrors     atomic.Int64
	DispatchTotalNanos atomic.Int64
	SaveCount          atomic.Int64
	SaveErrors         atomic.Int64
	SaveTotalNanos     atomic.Int64
	LoadCount          atomic.Int64
	LoadErrors         atomic.Int64
	LoadTotalNanos     atomic.Int64

	backends [4]atomic.Int64
}

// RecordDispatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDispatch(_ string, backend dispatch.BackendID, duration time.Duration, err error) {
	b.DispatchCount.Add(1)
	b.DispatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DispatchErrors.Add(1)
	}
	if i := int(backend) - 1; i >= 0 && i < len(b.backends) {
		b.backends[i].Add(1)
	}
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(duration time.Duration, err error) {
	b.SaveCount.Add(1)
	b.SaveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SaveErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		DispatchCount:    b.DispatchCount.Load(),
		DispatchErrors:   b.DispatchErrors.Load(),
		DispatchAvgNanos: avg(b.DispatchTotalNanos.Load(), b.DispatchCount.Load()),
		SaveCount:        b.SaveCount.Load(),
		SaveErrors:       b.SaveErrors.Load(),
		SaveAvgNanos:     avg(b.SaveTotalNanos.Load(), b.SaveCount.Load()),
		LoadCount:        b.LoadCount.Load(),
		LoadErrors:       b.LoadErrors.Load(),
		LoadAvgNanos:     avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		ByBackend:        make(map[string]int64),
	}
	for i := range b.backends {
		if n := b.backends[i].Load(); n > 0 {
			s.ByBackend[dispatch.BackendID(i+1).String()] = n
		}
	}
	return s
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DispatchCount    int64
	DispatchErrors   int64
	DispatchAvgNanos int64
	SaveCount        int64
	SaveErrors       int64
	SaveAvgNanos     int64
	LoadCount        int64
	LoadErrors       int64
	LoadAvgNanos     int64
	// ByBackend counts dispatches per computing backend.
	ByBackend map[string]int64
}
