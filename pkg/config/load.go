package config

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	log "github.com/anaghshineh/datahub/pkg/logger"
	"github.com/anaghshineh/datahub/pkg/perf"
	"github.com/anaghshineh/datahub/pkg/schema"
	"github.com/anaghshineh/datahub/pkg/utils"
)

// defaultAppConfig is merged into viper when no config file is found anywhere.
var defaultAppConfig = schema.AppConfiguration{
	Default: true,
	Logs: schema.Logs{
		File:  "/dev/stderr",
		Level: "Info",
	},
}

// LoadConfig loads the CLI configuration from the following locations, from
// lower to higher priority:
//   - system dir (`/usr/local/etc/datahub` on Linux, `%LOCALAPPDATA%/datahub` on Windows)
//   - home dir (~/.datahub)
//   - current directory
//   - the directory named by the DATAHUB_CLI_CONFIG_PATH env var
//   - an explicit path passed by the caller (usually a command-line flag)
func LoadConfig(cliConfigPath string) (schema.AppConfiguration, error) {
	defer perf.Track(nil, "config.LoadConfig")()

	v := viper.New()
	var appConfig schema.AppConfiguration
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)
	if err := bindEnvOverrides(v); err != nil {
		return appConfig, err
	}

	if err := readSystemConfig(v); err != nil {
		return appConfig, err
	}
	if err := readHomeConfig(v); err != nil {
		return appConfig, err
	}
	if err := readWorkDirConfig(v); err != nil {
		return appConfig, err
	}
	if err := readEnvConfigPath(v); err != nil {
		return appConfig, err
	}
	if cliConfigPath != "" {
		if err := mergeConfig(v, cliConfigPath, CliConfigFileName); err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
				log.Debug("Config not found", "file", cliConfigPath)
			default:
				return appConfig, err
			}
		}
	}

	appConfig.CliConfigPath = v.ConfigFileUsed()

	if appConfig.CliConfigPath == "" {
		log.Debug("'datahub.yaml' CLI config was not found", "paths", "system dir, home dir, current dir, ENV vars")
		log.Debug("Using the default CLI config")
		j, err := utils.ConvertToJSON(defaultAppConfig)
		if err != nil {
			return appConfig, err
		}
		if err := v.MergeConfig(bytes.NewReader([]byte(j))); err != nil {
			return appConfig, err
		}
	}

	if appConfig.CliConfigPath != "" && !filepath.IsAbs(appConfig.CliConfigPath) {
		absPath, err := filepath.Abs(appConfig.CliConfigPath)
		if err != nil {
			return appConfig, err
		}
		appConfig.CliConfigPath = absPath
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return appConfig, err
	}
	return appConfig, nil
}

// setDefaultConfiguration sets default configuration for the viper instance.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("logs.file", "/dev/stderr")
	v.SetDefault("logs.level", "Info")
}

// bindEnvOverrides lets env vars override values from any config file.
func bindEnvOverrides(v *viper.Viper) error {
	if err := v.BindEnv("logs.level", EnvLogsLevel); err != nil {
		return err
	}
	if err := v.BindEnv("logs.file", EnvLogsFile); err != nil {
		return err
	}
	return nil
}

// readSystemConfig loads config from the system dir.
func readSystemConfig(v *viper.Viper) error {
	configFilePath := ""
	if runtime.GOOS == "windows" {
		appDataDir := os.Getenv(WindowsAppDataEnvVar)
		if len(appDataDir) > 0 {
			configFilePath = filepath.Join(appDataDir, DataHubCommand)
		}
	} else {
		configFilePath = SystemDirConfigFilePath
	}

	if len(configFilePath) > 0 {
		err := mergeConfig(v, configFilePath, CliConfigFileName)
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readHomeConfig loads config from the user's HOME dir.
func readHomeConfig(v *viper.Viper) error {
	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	configFilePath := filepath.Join(home, ".datahub")
	err = mergeConfig(v, configFilePath, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readWorkDirConfig loads config from the current working directory.
func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	err = mergeConfig(v, wd, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

func readEnvConfigPath(v *viper.Viper) error {
	configPath := os.Getenv(EnvCliConfigPath)
	if configPath == "" {
		return nil
	}
	err := mergeConfig(v, configPath, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			log.Debug("Config not found in dir from ENV var", "var", EnvCliConfigPath, "dir", configPath)
			return nil
		default:
			return err
		}
	}
	log.Debug("Found config via ENV var", "var", EnvCliConfigPath, "dir", configPath)
	return nil
}

// mergeConfig merges config from the specified path and file name.
func mergeConfig(v *viper.Viper, path string, fileName string) error {
	v.AddConfigPath(path)
	v.SetConfigName(fileName)
	return v.MergeInConfig()
}
