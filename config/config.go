// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// Config is the configuration of the secret store bridge.
type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	Chain   ChainConfig   `toml:"chain"`
	Service ServiceConfig `toml:"service"`
	Queue   QueueConfig   `toml:"queue"`
	Metrics MetricsConfig `toml:"metrics"`
}

// GlobalConfig holds the settings shared by all components.
type GlobalConfig struct {
	LogLvl string `toml:"log" validate:"required"`
	// SelfID is the address of the key server running the bridge.
	SelfID string `toml:"self-id" validate:"required,eth_addr"`
}

// LogConfig represents the log levels for individual packages.
// Empty levels default to the global log level.
type LogConfig struct {
	BridgeLvl    string `toml:"secretstore,omitempty"`
	SubstrateLvl string `toml:"substrate,omitempty"`
	ServiceLvl   string `toml:"service,omitempty"`
	QueueLvl     string `toml:"queue,omitempty"`
	MetricsLvl   string `toml:"metrics,omitempty"`
}

// ChainConfig is the configuration of the substrate node connection.
type ChainConfig struct {
	Endpoint string `toml:"endpoint" validate:"required,url"`
	// Signer is the secret URI of the account signing the responses, eg. //Alice
	Signer string `toml:"signer" validate:"required"`
	// MetadataCacheSize is the number of runtime versions metadata kept in cache.
	MetadataCacheSize int64 `toml:"metadata-cache-size" validate:"gte=1"`
}

// ServiceConfig is the configuration of the tasks scheduling.
type ServiceConfig struct {
	PendingTasksInterval uint `toml:"pending-tasks-interval" validate:"gte=1"`
	// MaxPendingTasks is the maximum number of pending tasks read per scan, 0 for no limit.
	MaxPendingTasks uint `toml:"max-pending-tasks"`
	// ResultsTimeout is the number of seconds to wait for a key server result.
	ResultsTimeout uint `toml:"results-timeout" validate:"gte=1"`
}

// QueueConfig is the configuration of the Redis task queue.
type QueueConfig struct {
	Address  string `toml:"address" validate:"required,hostname_port"`
	Password string `toml:"password,omitempty"`
	DB       int    `toml:"db" validate:"gte=0"`
	Name     string `toml:"name" validate:"required"`
}

// MetricsConfig is the configuration of the metrics server.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address" validate:"required,hostname_port"`
}

// Default returns the default configuration. The key server
// identity has no default and must be set.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			LogLvl: "info",
		},
		Chain: ChainConfig{
			Endpoint:          "ws://127.0.0.1:9944",
			Signer:            "//Alice",
			MetadataCacheSize: 100,
		},
		Service: ServiceConfig{
			PendingTasksInterval: 4,
			MaxPendingTasks:      64,
			ResultsTimeout:       1,
		},
		Queue: QueueConfig{
			Address: "127.0.0.1:6379",
			Name:    "secretstore",
		},
		Metrics: MetricsConfig{
			Address: "localhost:9876",
		},
	}
}

// Load overrides the configuration values with the ones
// set in the TOML file at path.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read configuration file: %w", err)
	}

	err = toml.Unmarshal(data, cfg)
	if err != nil {
		return fmt.Errorf("cannot decode configuration file %s: %w", path, err)
	}
	return nil
}

// Export writes the configuration as TOML to the file at path.
func Export(cfg *Config, path string) error {
	data, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("cannot encode configuration: %w", err)
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		return fmt.Errorf("cannot write configuration file: %w", err)
	}
	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
