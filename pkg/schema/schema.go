// Package schema defines the configuration models shared across the CLI and
// the ingestion-source packages. Types here are plain data: they carry
// defaults and pure helpers but perform no I/O.
package schema

// AppConfiguration is the CLI configuration loaded from `datahub.yaml`
// (system dir, home dir, current dir, ENV vars, command-line arguments).
type AppConfiguration struct {
	// Default is true when no config file was found and the built-in
	// defaults are in use.
	Default bool `yaml:"default,omitempty" json:"default,omitempty" mapstructure:"default"`

	Logs     Logs             `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	Validate ValidateSettings `yaml:"validate,omitempty" json:"validate,omitempty" mapstructure:"validate"`
	Perf     PerfSettings     `yaml:"perf,omitempty" json:"perf,omitempty" mapstructure:"perf"`

	// CliConfigPath is the resolved path of the config file in use.
	CliConfigPath string `yaml:"cli_config_path,omitempty" json:"cli_config_path,omitempty" mapstructure:"cli_config_path"`
}

// Logs controls destination and verbosity of CLI logging.
type Logs struct {
	File  string `yaml:"file,omitempty" json:"file,omitempty" mapstructure:"file"`
	Level string `yaml:"level,omitempty" json:"level,omitempty" mapstructure:"level"`
}

// ValidateSettings configures recipe schema validation.
type ValidateSettings struct {
	// SchemaPath overrides the embedded recipe schema when set.
	SchemaPath string `yaml:"schema_path,omitempty" json:"schema_path,omitempty" mapstructure:"schema_path"`
}

// PerfSettings controls function call tracking.
type PerfSettings struct {
	Enabled bool `yaml:"enabled,omitempty" json:"enabled,omitempty" mapstructure:"enabled"`
}
