// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/gossamer-secretstore/config"
	"github.com/ChainSafe/gossamer-secretstore/internal/log"
	"github.com/urfave/cli"
)

// stringKVStore is the flags values accessor of a cli context.
type stringKVStore interface {
	String(key string) string
	Bool(key string) bool
}

// createConfig returns the default configuration, overridden by the
// configuration file and then by the flags.
func createConfig(ctx stringKVStore) (*config.Config, error) {
	cfg := config.Default()

	if path := ctx.String(ConfigFlag.Name); path != "" {
		logger.Info("loading toml configuration from " + path + "...")
		err := config.Load(path, cfg)
		if err != nil {
			return nil, err
		}
	}

	setFlagsConfig(ctx, cfg)
	return cfg, nil
}

// createConfigIfExists is createConfig for a configuration
// file which may not exist yet.
func createConfigIfExists(ctx stringKVStore, path string) (*config.Config, error) {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := config.Default()
		setFlagsConfig(ctx, cfg)
		return cfg, nil
	}
	return createConfig(ctx)
}

// setFlagsConfig overrides the configuration values with the flags set.
func setFlagsConfig(ctx stringKVStore, cfg *config.Config) {
	overrides := []struct {
		flagName string
		value    *string
	}{
		{flagName: LogFlag.Name, value: &cfg.Global.LogLvl},
		{flagName: SelfIDFlag.Name, value: &cfg.Global.SelfID},
		{flagName: EndpointFlag.Name, value: &cfg.Chain.Endpoint},
		{flagName: SignerFlag.Name, value: &cfg.Chain.Signer},
		{flagName: RedisFlag.Name, value: &cfg.Queue.Address},
		{flagName: QueueFlag.Name, value: &cfg.Queue.Name},
		{flagName: MetricsAddressFlag.Name, value: &cfg.Metrics.Address},
	}
	for _, override := range overrides {
		if value := ctx.String(override.flagName); value != "" {
			*override.value = value
		}
	}

	if ctx.Bool(MetricsFlag.Name) {
		cfg.Metrics.Enabled = true
	}
}

// logLevels are the log levels of the packages of the bridge.
type logLevels struct {
	global    log.Level
	bridge    log.Level
	substrate log.Level
	service   log.Level
	queue     log.Level
	metrics   log.Level
}

// parseLogLevels parses the log levels of the configuration,
// empty package levels defaulting to the global level.
func parseLogLevels(cfg config.LogConfig, globalLvl string) (levels logLevels, err error) {
	levels.global, err = log.ParseLevel(globalLvl)
	if err != nil {
		return levels, fmt.Errorf("cannot parse global log level: %w", err)
	}

	levelsData := []struct {
		name     string
		value    string
		levelPtr *log.Level
	}{
		{name: "secretstore", value: cfg.BridgeLvl, levelPtr: &levels.bridge},
		{name: "substrate", value: cfg.SubstrateLvl, levelPtr: &levels.substrate},
		{name: "service", value: cfg.ServiceLvl, levelPtr: &levels.service},
		{name: "queue", value: cfg.QueueLvl, levelPtr: &levels.queue},
		{name: "metrics", value: cfg.MetricsLvl, levelPtr: &levels.metrics},
	}

	for _, levelData := range levelsData {
		if levelData.value == "" {
			*levelData.levelPtr = levels.global
			continue
		}

		*levelData.levelPtr, err = log.ParseLevel(levelData.value)
		if err != nil {
			return levels, fmt.Errorf("cannot parse %s log level: %w", levelData.name, err)
		}
	}

	return levels, nil
}

// setupLogger sets up the global logger.
func setupLogger(level log.Level) {
	log.Patch(
		log.SetWriter(os.Stdout),
		log.SetFormat(log.FormatConsole),
		log.SetCaller(true),
		log.SetLevel(level),
	)
}

var _ stringKVStore = (*cli.Context)(nil)
