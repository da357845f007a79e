package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != ConfigVersion {
		t.Errorf("Expected version %s, got %s", ConfigVersion, config.Version)
	}

	if config.Tools.PMRep != "pmrep" {
		t.Errorf("Expected pmrep binary name, got %s", config.Tools.PMRep)
	}

	if config.PMRep.ConfFile != DefaultPMRepConfFile {
		t.Errorf("Expected default conf file, got %s", config.PMRep.ConfFile)
	}

	if config.Run.TimeoutSeconds != 300 {
		t.Errorf("Expected 300s timeout, got %d", config.Run.TimeoutSeconds)
	}

	if config.Run.OutputPrefix != "pcp_analysis" {
		t.Errorf("Expected pcp_analysis prefix, got %s", config.Run.OutputPrefix)
	}
}

func TestLoadConfig(t *testing.T) {
	// Loading a non-existent config returns defaults.
	config, err := LoadConfig("/non/existent/path")
	if err != nil {
		t.Errorf("Expected no error for non-existent config, got %v", err)
	}

	if config == nil {
		t.Error("Expected default config, got nil")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")
	if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestConfigSave(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "sub", "config.json")

	config := DefaultConfig()
	config.Run.TimeoutSeconds = 120
	config.Tools.PCP = "/opt/pcp/bin/pcp"

	err := config.SaveTo(configPath)
	if err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Run.TimeoutSeconds != 120 {
		t.Errorf("Expected timeout 120, got %d", loaded.Run.TimeoutSeconds)
	}
	if loaded.Tools.PCP != "/opt/pcp/bin/pcp" {
		t.Errorf("Expected custom pcp path, got %s", loaded.Tools.PCP)
	}
}

func TestCommandTimeout(t *testing.T) {
	config := DefaultConfig()

	if config.CommandTimeout() != 300*time.Second {
		t.Errorf("Expected 300s, got %s", config.CommandTimeout())
	}

	config.Run.TimeoutSeconds = 0
	if config.CommandTimeout() != DefaultTimeout {
		t.Errorf("Zero timeout should fall back to default, got %s", config.CommandTimeout())
	}

	config.Run.LabelTimeoutSeconds = 10
	if config.LabelTimeout() != 10*time.Second {
		t.Errorf("Expected 10s label timeout, got %s", config.LabelTimeout())
	}
}

func TestBinary(t *testing.T) {
	config := DefaultConfig()
	config.Tools.PMRep = "/usr/local/bin/pmrep"

	tests := []struct {
		tool     string
		expected string
	}{
		{ToolPMRep, "/usr/local/bin/pmrep"},
		{ToolPCP, "pcp"},
		{ToolPMDumpLog, "pmdumplog"},
		{"something-else", "something-else"},
	}

	for _, tt := range tests {
		if got := config.Binary(tt.tool); got != tt.expected {
			t.Errorf("Binary(%s) = %s, expected %s", tt.tool, got, tt.expected)
		}
	}
}
