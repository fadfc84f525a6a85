// Package perf provides lightweight call tracking for hot paths.
// Tracking is off by default and costs a single atomic load per call site.
package perf

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anaghshineh/datahub/pkg/schema"
)

// metric accumulates timings for a single tracked function.
type metric struct {
	count int64
	total time.Duration
	max   time.Duration
}

var (
	mu      sync.Mutex
	metrics = map[string]*metric{}
	enabled atomic.Bool
)

// EnableTracking turns call tracking on or off process-wide.
func EnableTracking(on bool) {
	enabled.Store(on)
}

// TrackingEnabled reports whether call tracking is active.
func TrackingEnabled() bool {
	return enabled.Load()
}

// Track records one invocation of the named function:
//
//	defer perf.Track(nil, "gcp.ActivateCredential")()
//
// The appConfig parameter lets a call path force tracking when the global
// switch is off; most call sites pass nil.
func Track(appConfig *schema.AppConfiguration, name string) func() {
	if !enabled.Load() && (appConfig == nil || !appConfig.Perf.Enabled) {
		return func() {}
	}

	start := time.Now()
	return func() {
		record(name, time.Since(start))
	}
}

func record(name string, elapsed time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	m, ok := metrics[name]
	if !ok {
		m = &metric{}
		metrics[name] = m
	}
	m.count++
	m.total += elapsed
	if elapsed > m.max {
		m.max = elapsed
	}
}

// FuncStat is one row of a tracking snapshot.
type FuncStat struct {
	Name  string
	Count int64
	Total time.Duration
	Avg   time.Duration
	Max   time.Duration
}

// Snapshot returns the tracked functions sorted by total time, descending.
func Snapshot() []FuncStat {
	mu.Lock()
	defer mu.Unlock()

	out := make([]FuncStat, 0, len(metrics))
	for name, m := range metrics {
		stat := FuncStat{
			Name:  name,
			Count: m.count,
			Total: m.total,
			Max:   m.max,
		}
		if m.count > 0 {
			stat.Avg = m.total / time.Duration(m.count)
		}
		out = append(out, stat)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Reset clears all recorded metrics.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	metrics = map[string]*metric{}
}
