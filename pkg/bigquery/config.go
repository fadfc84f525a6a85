package bigquery

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	errUtils "github.com/anaghshineh/datahub/errors"
	"github.com/anaghshineh/datahub/pkg/gcp"
	"github.com/anaghshineh/datahub/pkg/perf"
	"github.com/anaghshineh/datahub/pkg/schema"
	"github.com/anaghshineh/datahub/pkg/utils"
)

// PlatformBigQuery is the only platform value a BigQuery source can carry.
const PlatformBigQuery = "bigquery"

// Defaults for the BigQuery usage source.
const (
	DefaultLogPageSize            = 1000
	DefaultRequestsPerMin         = 60
	DefaultMaxQueryDuration       = 15 * time.Minute
	DefaultTempTableDatasetPrefix = "_"

	// DefaultShardedTableRegex recognizes date-sharded tables such as
	// "events_20210720" (and bare "20210720"), capturing the base name and
	// the shard suffix.
	DefaultShardedTableRegex = `((.+)[_$])?(\d{8})$`

	errWrapFormat = "%w: %w"
)

var defaultShardedTableRegexp = regexp.MustCompile(DefaultShardedTableRegex)

// BigQueryBaseConfig carries options shared by every BigQuery source:
// client-side rate limiting and the shape of date-sharded table names.
type BigQueryBaseConfig struct {
	RateLimit           bool   `yaml:"rate_limit,omitempty" json:"rate_limit,omitempty" mapstructure:"rate_limit"`
	RequestsPerMin      int    `yaml:"requests_per_min,omitempty" json:"requests_per_min,omitempty" mapstructure:"requests_per_min"`
	ShardedTablePattern string `yaml:"sharded_table_pattern,omitempty" json:"sharded_table_pattern,omitempty" mapstructure:"sharded_table_pattern"`
}

// UsageConfig configures the bigquery-usage ingestion source: which projects
// to read audit logs from, how those logs are filtered, and the aggregation
// window for usage statistics.
//
// Build it with NewUsageConfig; a UsageConfig that came out of NewUsageConfig
// has passed every validation rule and is never partially valid.
type UsageConfig struct {
	gcp.SourceConfig       `yaml:",inline" mapstructure:",squash"`
	schema.BaseUsageConfig `yaml:",inline" mapstructure:",squash"`
	BigQueryBaseConfig     `yaml:",inline" mapstructure:",squash"`

	// Projects are the GCP projects whose audit logs are read. Empty means
	// the project the credential resolves to.
	Projects []string `yaml:"projects,omitempty" json:"projects,omitempty" mapstructure:"projects"`

	// ProjectID is deprecated. A value supplied here is migrated into
	// Projects during validation and the field is cleared.
	ProjectID string `yaml:"project_id,omitempty" json:"project_id,omitempty" mapstructure:"project_id"`

	ExtraClientOptions map[string]any `yaml:"extra_client_options,omitempty" json:"extra_client_options,omitempty" mapstructure:"extra_client_options"`

	UseV2AuditMetadata               bool     `yaml:"use_v2_audit_metadata,omitempty" json:"use_v2_audit_metadata,omitempty" mapstructure:"use_v2_audit_metadata"`
	BigQueryAuditMetadataDatasets    []string `yaml:"bigquery_audit_metadata_datasets,omitempty" json:"bigquery_audit_metadata_datasets,omitempty" mapstructure:"bigquery_audit_metadata_datasets"`
	UseExportedBigQueryAuditMetadata bool     `yaml:"use_exported_bigquery_audit_metadata,omitempty" json:"use_exported_bigquery_audit_metadata,omitempty" mapstructure:"use_exported_bigquery_audit_metadata"`
	UseDateShardedAuditLogTables     bool     `yaml:"use_date_sharded_audit_log_tables,omitempty" json:"use_date_sharded_audit_log_tables,omitempty" mapstructure:"use_date_sharded_audit_log_tables"`

	TablePattern   *schema.AllowDenyPattern `yaml:"table_pattern,omitempty" json:"table_pattern,omitempty" mapstructure:"table_pattern"`
	DatasetPattern *schema.AllowDenyPattern `yaml:"dataset_pattern,omitempty" json:"dataset_pattern,omitempty" mapstructure:"dataset_pattern"`

	LogPageSize int `yaml:"log_page_size,omitempty" json:"log_page_size,omitempty" mapstructure:"log_page_size"`

	// QueryLogDelay caps how many entries are read ahead when correlating
	// query events with read events. Nil means unlimited.
	QueryLogDelay *int `yaml:"query_log_delay,omitempty" json:"query_log_delay,omitempty" mapstructure:"query_log_delay"`

	MaxQueryDuration time.Duration `yaml:"max_query_duration,omitempty" json:"max_query_duration,omitempty" mapstructure:"max_query_duration"`

	TempTableDatasetPrefix string `yaml:"temp_table_dataset_prefix,omitempty" json:"temp_table_dataset_prefix,omitempty" mapstructure:"temp_table_dataset_prefix"`

	// shardedTableRegexp is compiled from ShardedTablePattern during
	// validation.
	shardedTableRegexp *regexp.Regexp
}

// DefaultUsageConfig returns a UsageConfig with every field at its
// documented default. Decode recipe input over it so absent keys keep
// their defaults while explicit values, including explicit false, win.
func DefaultUsageConfig() *UsageConfig {
	return &UsageConfig{
		BaseUsageConfig: schema.DefaultBaseUsageConfig(),
		BigQueryBaseConfig: BigQueryBaseConfig{
			RequestsPerMin:      DefaultRequestsPerMin,
			ShardedTablePattern: DefaultShardedTableRegex,
		},
		TablePattern:           schema.AllowAll(),
		DatasetPattern:         schema.AllowAll(),
		LogPageSize:            DefaultLogPageSize,
		MaxQueryDuration:       DefaultMaxQueryDuration,
		TempTableDatasetPrefix: DefaultTempTableDatasetPrefix,
	}
}

// NewUsageConfig decodes raw recipe input over the defaults and runs the
// validation pipeline. On any rule failure the config is discarded and only
// the error returned; when the recipe carries a GCP credential, a returned
// config means the credential file exists and the ambient credential
// variable points at it.
func NewUsageConfig(input map[string]any) (*UsageConfig, error) {
	defer perf.Track(nil, "bigquery.NewUsageConfig")()

	cfg := DefaultUsageConfig()
	if err := utils.DecodeInto(input, cfg); err != nil {
		return nil, fmt.Errorf(errWrapFormat, errUtils.ErrInvalidRecipe, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate runs the full rule pipeline against the candidate config,
// rewriting derived fields in place. See usageConfigRules for the order.
func (c *UsageConfig) Validate() error {
	defer perf.Track(nil, "bigquery.UsageConfig.Validate")()

	return runRules(c)
}

// GetAllowPatternString joins the table allow patterns with "|" for
// interpolation into audit log filter templates. Returns "" when no table
// pattern is set.
func (c *UsageConfig) GetAllowPatternString() string {
	if c.TablePattern == nil {
		return ""
	}
	return strings.Join(c.TablePattern.Allow, "|")
}

// GetDenyPatternString joins the table deny patterns with "|". Like the
// allow variant it reads the table pattern; dataset filtering never feeds
// the audit log filter.
func (c *UsageConfig) GetDenyPatternString() string {
	if c.TablePattern == nil {
		return ""
	}
	return strings.Join(c.TablePattern.Deny, "|")
}

// MatchShardedTable reports whether table is a date-sharded table per the
// configured sharded table pattern, returning the base table name and the
// shard suffix when it is. The base name is empty for bare shard names
// like "20210720".
func (c *UsageConfig) MatchShardedTable(table string) (base, shard string, ok bool) {
	re := c.shardedTableRegexp
	if re == nil {
		re = defaultShardedTableRegexp
	}
	m := re.FindStringSubmatch(table)
	if m == nil {
		return "", "", false
	}
	return m[2], m[3], true
}
