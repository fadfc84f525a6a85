package bigquery

import (
	"fmt"
	"regexp"
	"time"

	errUtils "github.com/anaghshineh/datahub/errors"
	log "github.com/anaghshineh/datahub/pkg/logger"
)

// ruleKind classifies what a validation rule is allowed to do to the
// candidate config.
type ruleKind int

const (
	// ruleDerive rewrites fields (fills defaults, migrates deprecated
	// values) and only fails on genuine errors.
	ruleDerive ruleKind = iota
	// ruleForce overwrites a field with its invariant value unconditionally.
	ruleForce
	// ruleReject checks an invariant and fails without touching the config.
	ruleReject
)

func (k ruleKind) String() string {
	switch k {
	case ruleDerive:
		return "derive"
	case ruleForce:
		return "force"
	case ruleReject:
		return "reject"
	default:
		return "unknown"
	}
}

// validationRule is one named step of the config validation pipeline.
type validationRule struct {
	name  string
	kind  ruleKind
	apply func(*UsageConfig) error
}

// usageConfigRules run in declaration order and the first failure aborts
// the pipeline. Derives run before the checks that read their output, and
// the credential rule runs last so a rejected config never materializes a
// credential file or touches the environment.
var usageConfigRules = []validationRule{
	{name: "project-id-deprecation", kind: ruleDerive, apply: ruleProjectIDDeprecation},
	{name: "platform-is-bigquery", kind: ruleForce, apply: rulePlatformIsBigQuery},
	{name: "platform-instance-not-allowed", kind: ruleReject, apply: rulePlatformInstanceNotAllowed},
	{name: "exported-audit-metadata-requires-v2", kind: ruleReject, apply: ruleExportedAuditMetadataRequiresV2},
	{name: "positive-counters", kind: ruleReject, apply: rulePositiveCounters},
	{name: "sharded-table-pattern", kind: ruleReject, apply: ruleShardedTablePattern},
	{name: "filter-patterns", kind: ruleReject, apply: ruleFilterPatterns},
	{name: "usage-window", kind: ruleDerive, apply: ruleUsageWindow},
	{name: "gcp-credential", kind: ruleDerive, apply: ruleGCPCredential},
}

func runRules(c *UsageConfig) error {
	for _, rule := range usageConfigRules {
		log.Trace("Evaluating configuration rule", "rule", rule.name, "kind", rule.kind.String())
		if err := rule.apply(c); err != nil {
			return err
		}
	}
	return nil
}

// ruleProjectIDDeprecation migrates the deprecated project_id field into
// projects as a single-element list and clears the deprecated field.
func ruleProjectIDDeprecation(c *UsageConfig) error {
	if c.ProjectID == "" {
		return nil
	}
	log.Warn("bigquery-usage project_id option is deprecated; use projects instead")
	c.Projects = []string{c.ProjectID}
	c.ProjectID = ""
	return nil
}

// rulePlatformIsBigQuery forces the platform name regardless of what the
// recipe said.
func rulePlatformIsBigQuery(c *UsageConfig) error {
	c.Platform = PlatformBigQuery
	return nil
}

func rulePlatformInstanceNotAllowed(c *UsageConfig) error {
	if c.PlatformInstance == "" {
		return nil
	}
	err := fmt.Errorf("%w: BigQuery project-ids are globally unique. You don't need to provide a platform_instance",
		errUtils.ErrConfigurationInvalid)
	return errUtils.Build(err).
		WithHint("Remove `platform_instance` from the recipe").
		Err()
}

func ruleExportedAuditMetadataRequiresV2(c *UsageConfig) error {
	if !c.UseExportedBigQueryAuditMetadata || c.UseV2AuditMetadata {
		return nil
	}
	err := fmt.Errorf("%w: To use exported BigQuery audit metadata, you must also use v2 audit metadata",
		errUtils.ErrConfigurationInvalid)
	return errUtils.Build(err).
		WithHint("Set `use_v2_audit_metadata: true` in the recipe").
		Err()
}

func rulePositiveCounters(c *UsageConfig) error {
	if c.LogPageSize <= 0 {
		return fmt.Errorf("%w: log_page_size must be a positive integer, got %d",
			errUtils.ErrConfigurationInvalid, c.LogPageSize)
	}
	if c.QueryLogDelay != nil && *c.QueryLogDelay <= 0 {
		return fmt.Errorf("%w: query_log_delay must be a positive integer, got %d",
			errUtils.ErrConfigurationInvalid, *c.QueryLogDelay)
	}
	if c.TopNQueries <= 0 {
		return fmt.Errorf("%w: top_n_queries must be a positive integer, got %d",
			errUtils.ErrConfigurationInvalid, c.TopNQueries)
	}
	if c.RequestsPerMin <= 0 {
		return fmt.Errorf("%w: requests_per_min must be a positive integer, got %d",
			errUtils.ErrConfigurationInvalid, c.RequestsPerMin)
	}
	if c.MaxQueryDuration < 0 {
		return fmt.Errorf("%w: max_query_duration must not be negative, got %s",
			errUtils.ErrConfigurationInvalid, c.MaxQueryDuration)
	}
	return nil
}

// ruleShardedTablePattern compiles the sharded table regex once so matching
// never pays a compile.
func ruleShardedTablePattern(c *UsageConfig) error {
	pattern := c.ShardedTablePattern
	if pattern == "" {
		pattern = DefaultShardedTableRegex
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: sharded_table_pattern: %w", errUtils.ErrInvalidPattern, err)
	}
	c.shardedTableRegexp = re
	return nil
}

func ruleFilterPatterns(c *UsageConfig) error {
	named := []struct {
		field   string
		pattern interface{ Validate() error }
	}{
		{"table_pattern", c.TablePattern},
		{"dataset_pattern", c.DatasetPattern},
		{"user_email_pattern", c.UserEmailPattern},
	}
	for _, p := range named {
		if err := p.pattern.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", errUtils.ErrInvalidPattern, p.field, err)
		}
	}
	return nil
}

// ruleUsageWindow derives unset window bounds relative to the current time
// and validates the result.
func ruleUsageWindow(c *UsageConfig) error {
	c.BaseTimeWindowConfig.ApplyDefaults(time.Now())
	if err := c.BaseTimeWindowConfig.Validate(); err != nil {
		return fmt.Errorf(errWrapFormat, errUtils.ErrInvalidTimeWindow, err)
	}
	return nil
}

// ruleGCPCredential runs the GCP source validation, which materializes an
// inline credential and sets the ambient credential variable. It stays last
// so the side effect never happens for a config another rule rejects.
func ruleGCPCredential(c *UsageConfig) error {
	return c.SourceConfig.Validate()
}
