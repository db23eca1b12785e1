package main

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configFile = "relauncher.config"

	appFolder     = "app-folder"
	paramsFile    = "params-file"
	secondaryFlag = "secondary-flag"
	loggingLevel  = "logging-level"
	logFile       = "log-file"
)

// Default values used when neither the command line nor a config file supplies one
const (
	defaultAppFolder     = "CalibrationTracker"
	defaultParamsFile    = "restart_params.txt"
	defaultSecondaryFlag = "--db"
	defaultLoggingLevel  = "critical"
)

// RelauncherConfig holds the settings that are not part of the launch request itself
type RelauncherConfig struct {
	AppFolder      string
	ParamsFileName string
	SecondaryFlag  string
	LogLevel       string
	LogFile        string
}

func getConfigFields() []string {
	return []string{appFolder, paramsFile, secondaryFlag, loggingLevel, logFile}
}

// SetValue sets value of the key in the configuration only if it does not already have a value
func (config *RelauncherConfig) SetValue(key, value string) {
	switch strings.ToLower(key) {
	case appFolder:
		if config.AppFolder == "" {
			config.AppFolder = value
		}
	case paramsFile:
		if config.ParamsFileName == "" {
			config.ParamsFileName = value
		}
	case secondaryFlag:
		if config.SecondaryFlag == "" {
			config.SecondaryFlag = value
		}
	case loggingLevel:
		if config.LogLevel == "" {
			config.LogLevel = value
		}
	case logFile:
		if config.LogFile == "" {
			config.LogFile = value
		}
	default:
		log.Warningf("Unknown parameter %s = %s", key, value)
	}
}

// SetDefaultValues fills whatever is still missing with the built-in defaults
func (config *RelauncherConfig) SetDefaultValues() {
	config.SetValue(appFolder, defaultAppFolder)
	config.SetValue(paramsFile, defaultParamsFile)
	config.SetValue(secondaryFlag, defaultSecondaryFlag)
	config.SetValue(loggingLevel, defaultLoggingLevel)
}

// LoadFile reads a YAML config file and applies its values. A missing file is
// not an error.
func (config *RelauncherConfig) LoadFile(filename string) error {
	content, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	var result map[string]string
	if err := yaml.Unmarshal(content, &result); err != nil {
		return &ConfigError{Op: "parsing config", Path: filename, Err: err}
	}
	log.Debugf("Loaded configuration from %s", filename)
	for key, value := range result {
		config.SetValue(key, value)
	}
	return nil
}

// LoadFolders applies the config file found in each folder, the first folder
// having precedence. Empty folder names are skipped and broken files are logged.
func (config *RelauncherConfig) LoadFolders(folders ...string) {
	seen := map[string]bool{}
	for _, folder := range folders {
		if folder == "" || seen[folder] {
			continue
		}
		seen[folder] = true
		if err := config.LoadFile(filepath.Join(folder, configFile)); err != nil {
			log.Errorf("Error while loading configuration file: %v", err)
		}
	}
}
