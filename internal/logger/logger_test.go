package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.expected {
				t.Errorf("parseLogLevel(%s) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInitializeAndLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	err := Initialize(Config{
		Level:         "DEBUG",
		FileEnabled:   true,
		FilePath:      logPath,
		FileFormat:    "text",
		FileMaxSizeMB: 1,
	})
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	Info("test info message", "key", "value")
	Warning("test warning message")
	Debugf("formatted %d", 7)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "test info message") {
		t.Error("log file missing info message")
	}
	if !strings.Contains(content, "test warning message") {
		t.Error("log file missing warning message")
	}
	if !strings.Contains(content, "formatted 7") {
		t.Error("log file missing formatted debug message")
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "filtered.log")

	err := Initialize(Config{
		Level:         "ERROR",
		FileEnabled:   true,
		FilePath:      logPath,
		FileFormat:    "text",
		FileMaxSizeMB: 1,
	})
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	Debug("should not appear")
	Info("should not appear either")
	Error("should appear")

	data, _ := os.ReadFile(logPath)
	content := string(data)

	if strings.Contains(content, "should not appear") {
		t.Error("low-level messages were not filtered")
	}
	if !strings.Contains(content, "should appear") {
		t.Error("error message was filtered out")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.Level != "INFO" {
		t.Errorf("default level = %s, want INFO", config.Level)
	}
	if !config.ConsoleEnabled {
		t.Error("default console logging should be enabled")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yaml")
	yaml := `logging:
  level: DEBUG
  console_enabled: true
  file_enabled: true
  file_path: custom.log
  file_max_size_mb: 25
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.Level != "DEBUG" {
		t.Errorf("level = %s, want DEBUG", config.Level)
	}
	if !config.FileEnabled {
		t.Error("file logging should be enabled")
	}
	if config.FilePath != "custom.log" {
		t.Errorf("file path = %s, want custom.log", config.FilePath)
	}
	if config.FileMaxSizeMB != 25 {
		t.Errorf("max size = %d, want 25", config.FileMaxSizeMB)
	}
}
