package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Version string      `json:"version"`
	Tools   ToolsConfig `json:"tools"`
	PMRep   PMRepConfig `json:"pmrep"`
	Run     RunConfig   `json:"run"`
}

type ToolsConfig struct {
	PMDumpLog string `json:"pmdumplog"`
	PMRep     string `json:"pmrep"`
	PCP       string `json:"pcp"`
}

type PMRepConfig struct {
	ConfFile string `json:"conf_file"`
}

type RunConfig struct {
	TimeoutSeconds      int    `json:"timeout_seconds"`
	LabelTimeoutSeconds int    `json:"label_timeout_seconds"`
	OutputPrefix        string `json:"output_prefix"`
	RetentionDays       int    `json:"retention_days"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: ConfigVersion,
		Tools: ToolsConfig{
			PMDumpLog: ToolPMDumpLog,
			PMRep:     ToolPMRep,
			PCP:       ToolPCP,
		},
		PMRep: PMRepConfig{
			ConfFile: DefaultPMRepConfFile,
		},
		Run: RunConfig{
			TimeoutSeconds:      DefaultTimeoutSeconds,
			LabelTimeoutSeconds: DefaultLabelTimeoutSeconds,
			OutputPrefix:        DefaultOutputPrefix,
			RetentionDays:       DefaultRetentionDays,
		},
	}
}

func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "pcpscan", "config.json")
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) CommandTimeout() time.Duration {
	if c.Run.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.Run.TimeoutSeconds) * time.Second
}

func (c *Config) LabelTimeout() time.Duration {
	if c.Run.LabelTimeoutSeconds <= 0 {
		return DefaultLabelTimeout
	}
	return time.Duration(c.Run.LabelTimeoutSeconds) * time.Second
}

// Binary returns the configured executable for one of the known PCP tools.
func (c *Config) Binary(tool string) string {
	switch tool {
	case ToolPMRep:
		return c.Tools.PMRep
	case ToolPCP:
		return c.Tools.PCP
	case ToolPMDumpLog:
		return c.Tools.PMDumpLog
	default:
		return tool
	}
}
