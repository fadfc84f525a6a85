package perf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaghshineh/datahub/pkg/schema"
)

func TestTrackDisabledByDefault(t *testing.T) {
	EnableTracking(false)
	Reset()

	Track(nil, "perf.noop")()

	assert.Empty(t, Snapshot())
}

func TestTrackRecordsWhenEnabled(t *testing.T) {
	EnableTracking(true)
	defer EnableTracking(false)
	Reset()

	done := Track(nil, "perf.tracked")
	time.Sleep(time.Millisecond)
	done()
	Track(nil, "perf.tracked")()

	stats := Snapshot()
	require.Len(t, stats, 1)
	assert.Equal(t, "perf.tracked", stats[0].Name)
	assert.Equal(t, int64(2), stats[0].Count)
	assert.GreaterOrEqual(t, stats[0].Total, time.Millisecond)
	assert.GreaterOrEqual(t, stats[0].Max, stats[0].Avg)
}

func TestTrackForcedByConfig(t *testing.T) {
	EnableTracking(false)
	Reset()

	appConfig := &schema.AppConfiguration{}
	appConfig.Perf.Enabled = true
	Track(appConfig, "perf.forced")()

	stats := Snapshot()
	require.Len(t, stats, 1)
	assert.Equal(t, "perf.forced", stats[0].Name)
}

func TestSnapshotSortedByTotal(t *testing.T) {
	EnableTracking(true)
	defer EnableTracking(false)
	Reset()

	record("perf.fast", time.Millisecond)
	record("perf.slow", time.Second)

	stats := Snapshot()
	require.Len(t, stats, 2)
	assert.Equal(t, "perf.slow", stats[0].Name)
	assert.Equal(t, "perf.fast", stats[1].Name)
}

func TestReset(t *testing.T) {
	EnableTracking(true)
	defer EnableTracking(false)

	Track(nil, "perf.gone")()
	Reset()

	assert.Empty(t, Snapshot())
}
