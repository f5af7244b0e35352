package app

import (
	"os"
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	if config.DataDir == "" {
		t.Error("DataDir not set to default")
	}
	if config.OutputDir == "" {
		t.Error("OutputDir not set to default")
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	// Save original env
	oldDataDir := os.Getenv("DATA_DIR")
	oldOutputDir := os.Getenv("OUTPUT_DIR")
	oldWorkers := os.Getenv("WORKERS")
	defer func() {
		os.Setenv("DATA_DIR", oldDataDir)
		os.Setenv("OUTPUT_DIR", oldOutputDir)
		os.Setenv("WORKERS", oldWorkers)
	}()

	// Set test environment variables
	os.Setenv("DATA_DIR", "/srv/drops/2016q2")
	os.Setenv("OUTPUT_DIR", "/tmp/linkage-out")
	os.Setenv("WORKERS", "8")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.DataDir != "/srv/drops/2016q2" {
		t.Errorf("DataDir = %s, want /srv/drops/2016q2", config.DataDir)
	}
	if config.OutputDir != "/tmp/linkage-out" {
		t.Errorf("OutputDir = %s, want /tmp/linkage-out", config.OutputDir)
	}
	if config.Workers != 8 {
		t.Errorf("Workers = %d, want 8", config.Workers)
	}
}

// TestConfig_LoggingOptions verifies logging configuration.
func TestConfig_LoggingOptions(t *testing.T) {
	// Save original env
	oldLevel := os.Getenv("LOG_LEVEL")
	oldFormat := os.Getenv("LOG_FORMAT")
	oldOutput := os.Getenv("LOG_OUTPUT")
	defer func() {
		os.Setenv("LOG_LEVEL", oldLevel)
		os.Setenv("LOG_FORMAT", oldFormat)
		os.Setenv("LOG_OUTPUT", oldOutput)
	}()

	// Set test values
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", config.LogFormat)
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %s, want stdout", config.LogOutput)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		LogLevel: "info",
	}

	config.UpdateFromFlags(true, false, true, "error")

	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if config.Quiet {
		t.Error("Quiet = true, want false")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flags")
	}
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %s, want error", config.LogLevel)
	}

	// Empty log level keeps the existing value
	config.UpdateFromFlags(false, true, false, "")
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %s, want error after empty flag", config.LogLevel)
	}
}
