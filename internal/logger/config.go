package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultLogConfig returns the default logging configuration: INFO to the
// console, no file output.
func DefaultLogConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/encounterlab.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// loggingFile wraps Config for YAML parsing
type loggingFile struct {
	Logging Config `yaml:"logging"`
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. Missing or unparsable files fall back to
// the defaults silently.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultLogConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			var file loggingFile
			if err := yaml.Unmarshal(data, &file); err == nil {
				if file.Logging.Level != "" {
					config.Level = file.Logging.Level
				}
				config.ConsoleEnabled = file.Logging.ConsoleEnabled
				if file.Logging.ConsoleFormat != "" {
					config.ConsoleFormat = file.Logging.ConsoleFormat
				}
				config.FileEnabled = file.Logging.FileEnabled
				if file.Logging.FilePath != "" {
					config.FilePath = file.Logging.FilePath
				}
				if file.Logging.FileFormat != "" {
					config.FileFormat = file.Logging.FileFormat
				}
				if file.Logging.FileMaxSizeMB > 0 {
					config.FileMaxSizeMB = file.Logging.FileMaxSizeMB
				}
				if file.Logging.FileMaxBackups > 0 {
					config.FileMaxBackups = file.Logging.FileMaxBackups
				}
				if file.Logging.FileMaxAgeDays > 0 {
					config.FileMaxAgeDays = file.Logging.FileMaxAgeDays
				}
			}
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Level = logLevel
	}

	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		config.FilePath = filePath
	}

	return config, nil
}
