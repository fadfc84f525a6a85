package config

const (
	// DataHubCommand is the CLI binary name.
	DataHubCommand = "datahub"

	// CliConfigFileName is the config file base name viper resolves against
	// its supported extensions (datahub.yaml and friends).
	CliConfigFileName = "datahub"

	SystemDirConfigFilePath = "/usr/local/etc/datahub"
	WindowsAppDataEnvVar    = "LOCALAPPDATA"

	// EnvCliConfigPath points at a directory holding the CLI config file.
	EnvCliConfigPath = "DATAHUB_CLI_CONFIG_PATH"

	// EnvLogsLevel and EnvLogsFile override the corresponding config file
	// settings without editing the file.
	EnvLogsLevel = "DATAHUB_LOGS_LEVEL"
	EnvLogsFile  = "DATAHUB_LOGS_FILE"
)
