package schema

import (
	"fmt"
	"time"
)

// DefaultTopNQueries is how many of the most frequent queries are surfaced
// per bucket.
const DefaultTopNQueries = 10

// BaseUsageConfig carries the knobs shared by usage extractors: the
// extraction time window plus reporting options.
type BaseUsageConfig struct {
	BaseTimeWindowConfig `yaml:",inline" mapstructure:",squash"`

	TopNQueries             int               `yaml:"top_n_queries,omitempty" json:"top_n_queries,omitempty" mapstructure:"top_n_queries"`
	UserEmailPattern        *AllowDenyPattern `yaml:"user_email_pattern,omitempty" json:"user_email_pattern,omitempty" mapstructure:"user_email_pattern"`
	IncludeOperationalStats bool              `yaml:"include_operational_stats,omitempty" json:"include_operational_stats,omitempty" mapstructure:"include_operational_stats"`
	IncludeTopNQueries      bool              `yaml:"include_top_n_queries,omitempty" json:"include_top_n_queries,omitempty" mapstructure:"include_top_n_queries"`
	FormatSQLQueries        bool              `yaml:"format_sql_queries,omitempty" json:"format_sql_queries,omitempty" mapstructure:"format_sql_queries"`
}

// DefaultBaseUsageConfig returns the documented defaults. Decode recipe
// input over it so absent keys keep their defaults.
func DefaultBaseUsageConfig() BaseUsageConfig {
	return BaseUsageConfig{
		BaseTimeWindowConfig: BaseTimeWindowConfig{
			BucketDuration: BucketDurationDay,
		},
		TopNQueries:             DefaultTopNQueries,
		UserEmailPattern:        AllowAll(),
		IncludeOperationalStats: true,
		IncludeTopNQueries:      true,
	}
}

// ApplyDefaults backstops zero values and derives the time window.
func (c *BaseUsageConfig) ApplyDefaults(now time.Time) {
	c.BaseTimeWindowConfig.ApplyDefaults(now)
	if c.TopNQueries == 0 {
		c.TopNQueries = DefaultTopNQueries
	}
	if c.UserEmailPattern == nil {
		c.UserEmailPattern = AllowAll()
	}
}

// Validate checks the usage knobs and the derived window.
func (c *BaseUsageConfig) Validate() error {
	if err := c.BaseTimeWindowConfig.Validate(); err != nil {
		return err
	}
	if c.TopNQueries <= 0 {
		return fmt.Errorf("top_n_queries must be a positive integer, got %d", c.TopNQueries)
	}
	if err := c.UserEmailPattern.Validate(); err != nil {
		return fmt.Errorf("user_email_pattern: %w", err)
	}
	return nil
}
