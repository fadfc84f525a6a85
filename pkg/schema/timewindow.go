package schema

import (
	"fmt"
	"strings"
	"time"
)

// BucketDuration is the granularity usage events are aggregated into.
type BucketDuration string

const (
	BucketDurationDay  BucketDuration = "DAY"
	BucketDurationHour BucketDuration = "HOUR"
)

// ParseBucketDuration normalizes a bucket duration string.
func ParseBucketDuration(s string) (BucketDuration, error) {
	switch BucketDuration(strings.ToUpper(s)) {
	case BucketDurationDay:
		return BucketDurationDay, nil
	case BucketDurationHour:
		return BucketDurationHour, nil
	default:
		return "", fmt.Errorf("bucket duration must be one of DAY, HOUR, got %q", s)
	}
}

// Delta returns the length of one bucket.
func (b BucketDuration) Delta() time.Duration {
	if b == BucketDurationHour {
		return time.Hour
	}
	return 24 * time.Hour
}

// TruncateToBucket floors t to its bucket boundary in UTC.
func (b BucketDuration) TruncateToBucket(t time.Time) time.Time {
	t = t.UTC()
	if b == BucketDurationHour {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BaseTimeWindowConfig bounds the extraction window. Unset bounds are
// derived relative to the current time: end_time becomes the next bucket
// boundary and start_time one bucket before it.
type BaseTimeWindowConfig struct {
	BucketDuration BucketDuration `yaml:"bucket_duration,omitempty" json:"bucket_duration,omitempty" mapstructure:"bucket_duration"`
	StartTime      time.Time      `yaml:"start_time,omitempty" json:"start_time,omitempty" mapstructure:"start_time"`
	EndTime        time.Time      `yaml:"end_time,omitempty" json:"end_time,omitempty" mapstructure:"end_time"`
}

// ApplyDefaults derives unset window bounds relative to now.
func (c *BaseTimeWindowConfig) ApplyDefaults(now time.Time) {
	if c.BucketDuration == "" {
		c.BucketDuration = BucketDurationDay
	}
	if c.EndTime.IsZero() {
		c.EndTime = c.BucketDuration.TruncateToBucket(now.Add(c.BucketDuration.Delta()))
	}
	if c.StartTime.IsZero() {
		c.StartTime = c.EndTime.Add(-c.BucketDuration.Delta())
	}
}

// Validate rejects unknown bucket durations, non-UTC bounds, and inverted
// windows. Call ApplyDefaults first so derived bounds are in place.
func (c *BaseTimeWindowConfig) Validate() error {
	switch c.BucketDuration {
	case BucketDurationDay, BucketDurationHour:
	default:
		return fmt.Errorf("bucket duration must be one of DAY, HOUR, got %q", string(c.BucketDuration))
	}
	if !isUTC(c.StartTime) {
		return fmt.Errorf("start_time must be a UTC time, got zone %s", zoneName(c.StartTime))
	}
	if !isUTC(c.EndTime) {
		return fmt.Errorf("end_time must be a UTC time, got zone %s", zoneName(c.EndTime))
	}
	if c.EndTime.Before(c.StartTime) {
		return fmt.Errorf("end_time %s precedes start_time %s",
			c.EndTime.Format(time.RFC3339), c.StartTime.Format(time.RFC3339))
	}
	return nil
}

func isUTC(t time.Time) bool {
	return t.Location() == time.UTC
}

func zoneName(t time.Time) string {
	name, _ := t.Zone()
	return name
}
