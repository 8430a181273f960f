// Package config handles meshtool configuration loading and management.
package config

import (
	"fmt"
	"runtime"
)

// Config holds all meshtool settings.
type Config struct {
	Mesher   MesherConfig   `yaml:"mesher"`
	Registry RegistryConfig `yaml:"registry"`
	Batch    BatchConfig    `yaml:"batch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MesherConfig holds quad building options.
type MesherConfig struct {
	Greedy          bool `yaml:"greedy"`
	IgnoreBlockType bool `yaml:"ignore_block_type"`
}

// RegistryConfig points at the block registry.
type RegistryConfig struct {
	Path string `yaml:"path"` // Empty means the built-in block set
}

// BatchConfig holds concurrent meshing settings.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 means one per CPU
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesher: MesherConfig{
			Greedy:          true,
			IgnoreBlockType: false,
		},
		Batch: BatchConfig{
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got %d", c.Batch.Workers)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

// WorkerCount returns the effective number of batch workers.
func (c *Config) WorkerCount() int {
	if c.Batch.Workers > 0 {
		return c.Batch.Workers
	}
	return runtime.NumCPU()
}
